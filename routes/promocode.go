package routes

import (
	"net/http"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// GetPromoCodes splits the promo codes into active and archived lists.
// The archive holds disabled codes and codes whose window has closed.
func GetPromoCodes(ctx iris.Context) {
	now := time.Now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var active []models.PromoCode
	if err := storage.DB.
		Where("is_active = ?", true).
		Where("valid_until >= ?", dayStart).
		Order("valid_until DESC").
		Find(&active).Error; err != nil {
		utils.Logger().Error("promo code query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load promo codes")
		return
	}

	var archived []models.PromoCode
	if err := storage.DB.
		Where("is_active = ? OR valid_until < ?", false, dayStart).
		Order("valid_until DESC").
		Find(&archived).Error; err != nil {
		utils.Logger().Error("promo code query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load promo codes")
		return
	}

	utils.JSONData(ctx, iris.Map{
		"active":   active,
		"archived": archived,
	})
}
