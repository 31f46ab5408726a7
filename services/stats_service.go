package services

import (
	"sort"
	"time"

	"tour-agency-server/models"

	"gorm.io/gorm"
)

// Descriptive statistics for the dashboard. All of them read the whole
// package/client tables; nothing here writes or caches.

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode returns the single most frequent value. When the data is multimodal
// with no unique winner it reports ok=false ("no mode") rather than failing.
func Mode(xs []float64) (mode float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	best, bestCount, unique := 0.0, 0, true
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, unique = v, c, true
		case c == bestCount:
			unique = false
		}
	}
	if !unique {
		return 0, false
	}
	return best, true
}

// PriceStats summarizes prices over every tour package in the store.
type PriceStats struct {
	Average float64  `json:"average"`
	Total   float64  `json:"total"`
	Median  float64  `json:"median"`
	Mode    *float64 `json:"mode"` // nil when no unique mode exists
	Count   int      `json:"count"`
}

func PackagePriceStatistics(db *gorm.DB) (*PriceStats, error) {
	var prices []float64
	if err := db.Model(&models.TourPackage{}).Pluck("price", &prices).Error; err != nil {
		return nil, err
	}

	stats := &PriceStats{
		Average: Mean(prices),
		Median:  Median(prices),
		Count:   len(prices),
	}
	for _, p := range prices {
		stats.Total += p
	}
	if mode, ok := Mode(prices); ok {
		stats.Mode = &mode
	}
	return stats, nil
}

// AgeStats covers every client profile with a birth date on record. Age is
// the plain year difference; rows that slipped past entry validation are
// still counted (no re-validation at read time).
type AgeStats struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

func ClientAgeStatistics(db *gorm.DB, now time.Time) (*AgeStats, error) {
	var births []time.Time
	err := db.Model(&models.ClientProfile{}).
		Where("birth_date IS NOT NULL").
		Pluck("birth_date", &births).Error
	if err != nil {
		return nil, err
	}

	ages := make([]float64, 0, len(births))
	for _, b := range births {
		ages = append(ages, float64(now.Year()-b.Year()))
	}
	return &AgeStats{Median: Median(ages), Mean: Mean(ages), Count: len(ages)}, nil
}

// PackageNameStat is one row of a group-by-name aggregation.
type PackageNameStat struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// MostPopularPackage returns the package name shared by the most rows.
// Ties are broken by whatever order the store returns.
func MostPopularPackage(db *gorm.DB) (*PackageNameStat, error) {
	var row PackageNameStat
	err := db.Model(&models.TourPackage{}).
		Select("name, COUNT(*) AS count").
		Group("name").
		Order("count DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Name == "" && row.Count == 0 {
		return nil, nil
	}
	return &row, nil
}

// MostProfitablePackage returns the package name with the highest summed price.
func MostProfitablePackage(db *gorm.DB) (*PackageNameStat, error) {
	var row PackageNameStat
	err := db.Model(&models.TourPackage{}).
		Select("name, SUM(price) AS total").
		Group("name").
		Order("total DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Name == "" && row.Total == 0 {
		return nil, nil
	}
	return &row, nil
}

// RecentPackagesForClient returns the client's newest packages, capped at limit.
func RecentPackagesForClient(db *gorm.DB, clientProfileID uint, limit int) ([]models.TourPackage, error) {
	var packages []models.TourPackage
	err := db.Where("client_id = ?", clientProfileID).
		Order("created_at DESC").
		Limit(limit).
		Find(&packages).Error
	return packages, err
}

// RecentPackagesForEmployee keeps the historical behavior: it matches
// packages whose owning client profile belongs to the employee's own user
// account, which is almost always an empty set.
func RecentPackagesForEmployee(db *gorm.DB, employeeUserID uint, limit int) ([]models.TourPackage, error) {
	var packages []models.TourPackage
	err := db.
		Joins("JOIN client_profiles ON client_profiles.id = tour_packages.client_id").
		Where("client_profiles.user_id = ?", employeeUserID).
		Order("tour_packages.created_at DESC").
		Limit(limit).
		Find(&packages).Error
	return packages, err
}
