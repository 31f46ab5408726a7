package routes

import (
	"errors"
	"net/http"
	"os"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/services"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentPackageLimit = 5

// GetDashboard assembles the per-role summary view: local time and a text
// calendar, the user's recent packages, global price/age statistics, and
// the collections for the client or employee branch.
func GetDashboard(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "user not found")
		return
	}

	loc := utils.LoadLocationOrDefault(user.TimeZone, os.Getenv("DEFAULT_TIME_ZONE"))
	now := time.Now()
	localNow := now.In(loc)

	// Profile type: client, employee, or neither. An account is expected to
	// link at most one of the two.
	var clientProfile models.ClientProfile
	var employeeProfile models.EmployeeProfile
	isClient := storage.DB.Where("user_id = ?", user.ID).First(&clientProfile).Error == nil
	isEmployee := false
	if !isClient {
		isEmployee = storage.DB.Where("user_id = ?", user.ID).First(&employeeProfile).Error == nil
	}

	role := "unknown"
	var recent []models.TourPackage
	var err error
	switch {
	case isClient:
		role = "client"
		recent, err = services.RecentPackagesForClient(storage.DB, clientProfile.ID, recentPackageLimit)
	case isEmployee:
		role = "employee"
		recent, err = services.RecentPackagesForEmployee(storage.DB, user.ID, recentPackageLimit)
	default:
		recent = []models.TourPackage{}
	}
	if err != nil {
		dashboardError(ctx, "recent package query failed", err)
		return
	}

	priceStats, err := services.PackagePriceStatistics(storage.DB)
	if err != nil {
		dashboardError(ctx, "price statistics failed", err)
		return
	}
	ageStats, err := services.ClientAgeStatistics(storage.DB, now)
	if err != nil {
		dashboardError(ctx, "age statistics failed", err)
		return
	}
	popular, err := services.MostPopularPackage(storage.DB)
	if err != nil {
		dashboardError(ctx, "popular package query failed", err)
		return
	}
	profitable, err := services.MostProfitablePackage(storage.DB)
	if err != nil {
		dashboardError(ctx, "profitable package query failed", err)
		return
	}

	data := iris.Map{
		"currentTime":       localNow.Format(time.RFC3339),
		"utcTime":           now.UTC().Format(time.RFC3339),
		"timeZone":          loc.String(),
		"calendar":          utils.MonthCalendar(localNow),
		"profileType":       role,
		"recentPackages":    recent,
		"priceStats":        priceStats,
		"clientAgeStats":    ageStats,
		"popularPackage":    popular,
		"profitablePackage": profitable,
	}

	switch role {
	case "client":
		var myPackages []models.TourPackage
		if err := storage.DB.Preload("Hotel").
			Where("client_id = ?", clientProfile.ID).
			Order("created_at DESC").
			Find(&myPackages).Error; err != nil {
			dashboardError(ctx, "client package query failed", err)
			return
		}
		promos, err := services.ActivePromoCodes(storage.DB, now)
		if err != nil {
			dashboardError(ctx, "promo code query failed", err)
			return
		}
		data["myPackages"] = myPackages
		data["activePromoCodes"] = promos
	case "employee":
		var clients []models.ClientProfile
		if err := storage.DB.Preload("User").Preload("TourPackages").
			Find(&clients).Error; err != nil {
			dashboardError(ctx, "client list query failed", err)
			return
		}
		var allPackages []models.TourPackage
		if err := storage.DB.Preload("Client.User").Preload("Hotel").
			Order("created_at DESC").
			Find(&allPackages).Error; err != nil {
			dashboardError(ctx, "package list query failed", err)
			return
		}
		data["clients"] = clients
		data["allPackages"] = allPackages
	}

	ctx.JSON(iris.Map{"data": data})
}

// dashboardError applies the same boundary policy as the catalog: log the
// cause, return a fixed message.
func dashboardError(ctx iris.Context, msg string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "record not found")
		return
	}
	utils.Logger().Error(msg, zap.Error(err))
	utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to build the dashboard")
}
