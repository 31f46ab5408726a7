package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tour-agency-server/models"

	"github.com/kataras/iris/v12"
)

func buildContentApp(t *testing.T) *iris.Application {
	t.Helper()
	app := iris.New()
	content := app.Party("/api/content")
	{
		content.Get("/articles", GetArticles)
		content.Get("/articles/{id:uint}", GetArticle)
		content.Get("/faq", GetFAQ)
		content.Get("/vacancies", GetVacancies)
	}
	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func getJSON(t *testing.T, app *iris.Application, path string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.Code
}

func TestGetArticles(t *testing.T) {
	db := newRouteTestDB(t)

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	older := models.Article{Title: "Opening Soon", ShortContent: "teaser", CreatedAt: base}
	newer := models.Article{Title: "Summer Deals", ShortContent: "teaser", CreatedAt: base.AddDate(0, 1, 0)}
	for _, a := range []*models.Article{&older, &newer} {
		if err := db.Create(a).Error; err != nil {
			t.Fatal(err)
		}
	}

	app := buildContentApp(t)

	var body struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if code := getJSON(t, app, "/api/content/articles", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(body.Data) != 2 || body.Data[0].Title != "Summer Deals" {
		t.Errorf("articles = %+v, want newest first", body.Data)
	}

	var detail struct {
		Data struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if code := getJSON(t, app, fmt.Sprintf("/api/content/articles/%d", older.ID), &detail); code != http.StatusOK {
		t.Fatalf("detail status = %d", code)
	}
	if detail.Data.Title != "Opening Soon" {
		t.Errorf("detail = %+v", detail.Data)
	}

	if code := getJSON(t, app, "/api/content/articles/9999", &detail); code != http.StatusNotFound {
		t.Errorf("missing article status = %d, want 404", code)
	}
}

func TestGetFAQAndVacancies(t *testing.T) {
	db := newRouteTestDB(t)

	if err := db.Create(&models.FAQ{Question: "How do I book?", Answer: "Via the catalog."}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.Vacancy{Title: "Tour Manager", Description: "Full time."}).Error; err != nil {
		t.Fatal(err)
	}

	app := buildContentApp(t)

	var faq struct {
		Data []struct {
			Question string `json:"question"`
		} `json:"data"`
	}
	if code := getJSON(t, app, "/api/content/faq", &faq); code != http.StatusOK {
		t.Fatalf("faq status = %d", code)
	}
	if len(faq.Data) != 1 || faq.Data[0].Question != "How do I book?" {
		t.Errorf("faq = %+v", faq.Data)
	}

	var vacancies struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if code := getJSON(t, app, "/api/content/vacancies", &vacancies); code != http.StatusOK {
		t.Fatalf("vacancies status = %d", code)
	}
	if len(vacancies.Data) != 1 || vacancies.Data[0].Title != "Tour Manager" {
		t.Errorf("vacancies = %+v", vacancies.Data)
	}
}
