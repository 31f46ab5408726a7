package services

import (
	"strconv"
	"strings"
	"time"

	"tour-agency-server/models"

	"gorm.io/gorm"
)

// CatalogFilters holds the raw query-string values for the tour catalog.
// Every field is optional; an empty string means "no constraint". The raw
// values are echoed back so the filter form can repopulate itself.
type CatalogFilters struct {
	PriceMin   string `json:"price_min"`
	PriceMax   string `json:"price_max"`
	CountryID  string `json:"country"`
	HotelClass string `json:"hotel_class"`
	IsHot      string `json:"is_hot"`
	Service    string `json:"service"`
	// Search is accepted and echoed but not applied as a filter.
	Search string `json:"search"`
	SortBy string `json:"sort_by"`
}

// FilterTourPackages builds the catalog query: supplied, non-empty filters
// are ANDed together; unparsable numeric values simply leave their filter
// off. Country and star-class constraints traverse the hotel join.
func FilterTourPackages(db *gorm.DB, f CatalogFilters) ([]models.TourPackage, error) {
	q := db.Model(&models.TourPackage{}).
		Joins("JOIN hotels ON hotels.id = tour_packages.hotel_id").
		Preload("Hotel.Country")

	if v := strings.TrimSpace(f.PriceMin); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("tour_packages.price >= ?", min)
		}
	}
	if v := strings.TrimSpace(f.PriceMax); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("tour_packages.price <= ?", max)
		}
	}
	if v := strings.TrimSpace(f.CountryID); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			q = q.Where("hotels.country_id = ?", id)
		}
	}
	if v := strings.TrimSpace(f.HotelClass); v != "" {
		if stars, err := strconv.Atoi(v); err == nil {
			q = q.Where("hotels.stars = ?", stars)
		}
	}
	if v := strings.TrimSpace(f.IsHot); v != "" {
		if hot, err := strconv.ParseBool(v); err == nil && hot {
			q = q.Where("tour_packages.is_hot_deal = ?", true)
		}
	}
	if v := strings.TrimSpace(f.Service); v != "" {
		q = q.Where("LOWER(tour_packages.additional_services) LIKE ?", "%"+strings.ToLower(v)+"%")
	}

	switch f.SortBy {
	case "price":
		q = q.Order("tour_packages.price ASC")
	case "-price":
		q = q.Order("tour_packages.price DESC")
	case "name":
		q = q.Order("tour_packages.name ASC")
	case "created_at":
		q = q.Order("tour_packages.created_at ASC")
	default:
		// Unrecognized sort keys keep the default ordering.
		q = q.Order("tour_packages.created_at DESC")
	}

	var packages []models.TourPackage
	if err := q.Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// CatalogReference is the auxiliary data the filter form renders next to
// the result set.
type CatalogReference struct {
	Hotels           []models.Hotel     `json:"hotels"`
	Countries        []models.Country   `json:"countries"`
	ActivePromoCodes []models.PromoCode `json:"activePromoCodes"`
}

// CatalogReferenceData loads the full hotel and country lists plus the promo
// codes currently active on the given day.
func CatalogReferenceData(db *gorm.DB, today time.Time) (*CatalogReference, error) {
	ref := &CatalogReference{}

	if err := db.Preload("Country").Order("name ASC").Find(&ref.Hotels).Error; err != nil {
		return nil, err
	}
	if err := db.Order("name ASC").Find(&ref.Countries).Error; err != nil {
		return nil, err
	}
	promos, err := ActivePromoCodes(db, today)
	if err != nil {
		return nil, err
	}
	ref.ActivePromoCodes = promos
	return ref, nil
}

// ActivePromoCodes returns codes satisfying the derived activity predicate:
// flag set and today within [valid_from, valid_until], both ends inclusive.
// Activity is recomputed against the given day on every call, never stored.
func ActivePromoCodes(db *gorm.DB, today time.Time) ([]models.PromoCode, error) {
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	var promos []models.PromoCode
	err := db.
		Where("is_active = ?", true).
		Where("valid_from <= ? AND valid_until >= ?", dayEnd, dayStart).
		Order("valid_until DESC").
		Find(&promos).Error
	if err != nil {
		return nil, err
	}
	return promos, nil
}
