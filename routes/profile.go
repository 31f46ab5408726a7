package routes

import (
	"errors"
	"net/http"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientProfileInput struct {
	Patronymic  string `json:"patronymic" validate:"max=100"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	BirthDate   string `json:"birthDate" validate:"required"` // YYYY-MM-DD
}

// GetClientProfile returns the authenticated user's client profile.
func GetClientProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var profile models.ClientProfile
	if err := storage.DB.Preload("User").Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "no client profile for this account")
		return
	}
	utils.JSONData(ctx, profile)
}

// CreateOrUpdateClientProfile upserts the profile. The phone mask and the
// adult age rule are checked here and again by the model hook, so invalid
// rows cannot enter the store through any path.
func CreateOrUpdateClientProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input ClientProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	if !models.ValidPhoneNumber(input.PhoneNumber) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_phone", "phone number must match +375 (XX) XXX-XX-XX")
		return
	}
	birth, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_birth_date", "birth date must be YYYY-MM-DD")
		return
	}
	if !models.IsAdult(birth, time.Now()) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "underage", "client must be at least 18 years old")
		return
	}

	var profile models.ClientProfile
	err = storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)

	profile.UserID = claims.ID
	profile.Patronymic = input.Patronymic
	profile.Address = input.Address
	profile.PhoneNumber = input.PhoneNumber
	profile.BirthDate = &birth

	if err := storage.DB.Save(&profile).Error; err != nil {
		utils.Logger().Error("profile save failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to save profile")
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	ctx.StatusCode(status)
	utils.JSONData(ctx, profile)
}

// GetProfileStatus reports which profile kinds link to this account.
func GetProfileStatus(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var clientCount, employeeCount int64
	storage.DB.Model(&models.ClientProfile{}).Where("user_id = ?", claims.ID).Count(&clientCount)
	storage.DB.Model(&models.EmployeeProfile{}).Where("user_id = ?", claims.ID).Count(&employeeCount)

	profileType := "unknown"
	switch {
	case clientCount > 0:
		profileType = "client"
	case employeeCount > 0:
		profileType = "employee"
	}

	utils.JSONData(ctx, iris.Map{
		"profileType": profileType,
		"hasClient":   clientCount > 0,
		"hasEmployee": employeeCount > 0,
	})
}
