package routes

import (
	"net/http"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// GetHotels lists hotels with their countries, ordered by name.
func GetHotels(ctx iris.Context) {
	var hotels []models.Hotel
	if err := storage.DB.Preload("Country").Order("name ASC").Find(&hotels).Error; err != nil {
		utils.Logger().Error("hotel query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load hotels")
		return
	}
	utils.JSONData(ctx, hotels)
}

// GetHotel returns one hotel with its country and packages.
func GetHotel(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := storage.DB.Preload("Country").Preload("TourPackages").First(&hotel, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "hotel not found")
		return
	}
	utils.JSONData(ctx, hotel)
}
