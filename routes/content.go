package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

const contentCacheTTL = 60 * time.Second

var bgContext = context.Background()

// cachedList serves a public list payload through a short Redis TTL cache.
// Without Redis (tests, degraded mode) it builds the payload directly.
func cachedList(ctx iris.Context, key string, build func() (interface{}, error)) {
	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(bgContext, key).Result(); err == nil {
			ctx.ContentType("application/json")
			ctx.WriteString(cached)
			return
		}
	}

	data, err := build()
	if err != nil {
		utils.Logger().Error("content query failed", utils.Field("key", key), zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load content")
		return
	}

	payload, err := json.Marshal(iris.Map{"data": data})
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load content")
		return
	}
	if storage.Redis != nil {
		storage.Redis.Set(bgContext, key, string(payload), contentCacheTTL)
	}
	ctx.ContentType("application/json")
	ctx.Write(payload)
}

// GET /api/content/articles
func GetArticles(ctx iris.Context) {
	cachedList(ctx, "content:articles", func() (interface{}, error) {
		var articles []models.Article
		err := storage.DB.Preload("Author").Order("created_at DESC").Find(&articles).Error
		return articles, err
	})
}

// GET /api/content/articles/{id}
func GetArticle(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid article id")
		return
	}
	var article models.Article
	if err := storage.DB.Preload("Author").First(&article, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "article not found")
		return
	}
	utils.JSONData(ctx, article)
}

// GET /api/content/faq
func GetFAQ(ctx iris.Context) {
	cachedList(ctx, "content:faq", func() (interface{}, error) {
		var faqs []models.FAQ
		err := storage.DB.Order("created_at DESC").Find(&faqs).Error
		return faqs, err
	})
}

// GET /api/content/vacancies
func GetVacancies(ctx iris.Context) {
	var vacancies []models.Vacancy
	if err := storage.DB.Order("created_at DESC").Find(&vacancies).Error; err != nil {
		utils.Logger().Error("vacancy query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load content")
		return
	}
	utils.JSONData(ctx, vacancies)
}

// GET /api/content/about — the whole "About the company" page in one payload.
func GetAbout(ctx iris.Context) {
	var about models.AboutPageContent
	storage.DB.First(&about)

	var videos []models.CompanyVideo
	var logos []models.CompanyLogo
	var history []models.CompanyHistoryItem
	var requisites []models.CompanyRequisite
	if err := storage.DB.Find(&videos).Error; err != nil {
		utils.Logger().Error("about page query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load content")
		return
	}
	storage.DB.Find(&logos)
	storage.DB.Order("year DESC").Find(&history)
	storage.DB.Find(&requisites)

	utils.JSONData(ctx, iris.Map{
		"about":      about,
		"videos":     videos,
		"logos":      logos,
		"history":    history,
		"requisites": requisites,
	})
}

// GET /api/content/contacts — employee directory for the contacts page.
func GetContacts(ctx iris.Context) {
	var employees []models.EmployeeProfile
	if err := storage.DB.Preload("User").Find(&employees).Error; err != nil {
		utils.Logger().Error("contacts query failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Failed to load content")
		return
	}
	utils.JSONData(ctx, employees)
}
