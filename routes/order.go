package routes

import (
	"net/http"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"go.uber.org/zap"
)

// GetMyOrders lists the authenticated client's orders, newest first.
func GetMyOrders(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var orders []models.Order
	if err := storage.DB.
		Preload("TourPackages.Hotel").
		Preload("Employee").
		Where("client_user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.Logger().Error("order query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load orders")
		return
	}
	utils.JSONData(ctx, orders)
}

// GetAllOrders lists every order; employee access only (router-enforced).
func GetAllOrders(ctx iris.Context) {
	var orders []models.Order
	if err := storage.DB.
		Preload("Client").
		Preload("Employee").
		Preload("TourPackages.Hotel").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.Logger().Error("order query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load orders")
		return
	}
	utils.JSONData(ctx, orders)
}

// GetOrder returns one order, visible to its owner or to any employee.
func GetOrder(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var order models.Order
	if err := storage.DB.
		Preload("Client").
		Preload("Employee").
		Preload("TourPackages.Hotel.Country").
		First(&order, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "order not found")
		return
	}

	if order.ClientUserID != claims.ID && claims.Role != "employee" && claims.Role != "admin" {
		utils.JSONError(ctx, http.StatusForbidden, "forbidden", "not your order")
		return
	}
	utils.JSONData(ctx, order)
}
