package routes

import (
	"net/http"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// GetCountries lists destinations ordered by name.
func GetCountries(ctx iris.Context) {
	var countries []models.Country
	if err := storage.DB.Order("name ASC").Find(&countries).Error; err != nil {
		utils.Logger().Error("country query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load countries")
		return
	}
	utils.JSONData(ctx, countries)
}

// GetCountry returns one destination with its climates and hotels.
func GetCountry(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid country id")
		return
	}

	var country models.Country
	if err := storage.DB.Preload("Climates").Preload("Hotels").First(&country, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "country not found")
		return
	}
	utils.JSONData(ctx, country)
}
