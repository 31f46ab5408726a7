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

type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required,max=2000"`
}

// GetReviews lists testimonials with their authors, newest first.
func GetReviews(ctx iris.Context) {
	var reviews []models.Review
	if err := storage.DB.Preload("Client").Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.Logger().Error("review query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load reviews")
		return
	}
	utils.JSONData(ctx, reviews)
}

// CreateReview stores a testimonial for the authenticated user.
func CreateReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReviewRequest
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", err.Error())
		return
	}

	review := models.Review{
		ClientUserID: claims.ID,
		Rating:       input.Rating,
		Text:         input.Text,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.Logger().Error("review create failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to save review")
		return
	}
	ctx.StatusCode(http.StatusCreated)
	utils.JSONData(ctx, review)
}
