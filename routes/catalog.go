package routes

import (
	"net/http"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/services"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// GetCatalog handles the tour catalog with multiple optional filters.
// Filter values are echoed back so the search form can repopulate itself.
func GetCatalog(ctx iris.Context) {
	filters := services.CatalogFilters{
		PriceMin:   ctx.URLParam("price_min"),
		PriceMax:   ctx.URLParam("price_max"),
		CountryID:  ctx.URLParam("country"),
		HotelClass: ctx.URLParam("hotel_class"),
		IsHot:      ctx.URLParam("is_hot"),
		Service:    ctx.URLParam("service"),
		Search:     ctx.URLParam("search"),
		SortBy:     ctx.URLParam("sort_by"),
	}

	packages, err := services.FilterTourPackages(storage.DB, filters)
	if err != nil {
		utils.Logger().Error("catalog package query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load the tour catalog")
		return
	}

	ref, err := services.CatalogReferenceData(storage.DB, time.Now())
	if err != nil {
		utils.Logger().Error("catalog reference query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load the tour catalog")
		return
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"packages":         packages,
			"hotels":           ref.Hotels,
			"countries":        ref.Countries,
			"activePromoCodes": ref.ActivePromoCodes,
		},
		"filters": filters,
		"meta":    iris.Map{"count": len(packages)},
	})
}

// GetTourPackage returns one package with its hotel and country joined.
func GetTourPackage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid package id")
		return
	}

	var pkg models.TourPackage
	if err := storage.DB.Preload("Hotel.Country").First(&pkg, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "tour package not found")
		return
	}
	utils.JSONData(ctx, pkg)
}
