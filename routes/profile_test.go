package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"tour-agency-server/models"
	"tour-agency-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func buildProfileApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	app := iris.New()
	verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	verifierMiddleware := verifier.Verify(func() interface{} { return new(utils.AccessToken) })

	profile := app.Party("/api/profile", verifierMiddleware)
	{
		profile.Get("/", GetClientProfile)
		profile.Post("/", CreateOrUpdateClientProfile)
		profile.Get("/status", GetProfileStatus)
	}
	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func postProfile(t *testing.T, app *iris.Application, token, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/profile/", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateOrUpdateClientProfile(t *testing.T) {
	db := newRouteTestDB(t)
	user := models.User{Email: "client@example.com", Role: "client"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	app := buildProfileApp(t)
	token := signDashboardToken(t, user.ID, "client")

	// First save creates the profile.
	resp := postProfile(t, app, token, `{
		"patronymic": "Ivanovich",
		"address": "Minsk",
		"phoneNumber": "+375 (29) 123-45-67",
		"birthDate": "1990-03-14"
	}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", resp.Code, resp.Body.String())
	}

	// Second save updates in place.
	resp = postProfile(t, app, token, `{
		"patronymic": "Ivanovich",
		"address": "Grodno",
		"phoneNumber": "+375 (29) 123-45-67",
		"birthDate": "1990-03-14"
	}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", resp.Code, resp.Body.String())
	}

	var count int64
	db.Model(&models.ClientProfile{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
	var profile models.ClientProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatal(err)
	}
	if profile.Address != "Grodno" {
		t.Errorf("address = %q, want Grodno", profile.Address)
	}
}

func TestCreateClientProfileValidation(t *testing.T) {
	db := newRouteTestDB(t)
	user := models.User{Email: "client@example.com", Role: "client"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	app := buildProfileApp(t)
	token := signDashboardToken(t, user.ID, "client")

	cases := []struct {
		name    string
		payload string
		code    string
	}{
		{
			"bad phone mask",
			`{"address": "Minsk", "phoneNumber": "80291234567", "birthDate": "1990-03-14"}`,
			"invalid_phone",
		},
		{
			"bad birth date format",
			`{"address": "Minsk", "phoneNumber": "+375 (29) 123-45-67", "birthDate": "14.03.1990"}`,
			"invalid_birth_date",
		},
		{
			"underage client",
			`{"address": "Minsk", "phoneNumber": "+375 (29) 123-45-67", "birthDate": "2015-03-14"}`,
			"underage",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postProfile(t, app, token, tc.payload)
			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tc.code {
				t.Errorf("error code = %q, want %q", body.Error, tc.code)
			}
		})
	}

	var count int64
	db.Model(&models.ClientProfile{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected payloads must not create rows, found %d", count)
	}
}

func TestGetProfileStatus(t *testing.T) {
	db := newRouteTestDB(t)
	user := models.User{Email: "client@example.com", Role: "client"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	app := buildProfileApp(t)
	token := signDashboardToken(t, user.ID, "client")

	status := func() string {
		req := httptest.NewRequest(http.MethodGet, "/api/profile/status", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("status endpoint = %d", resp.Code)
		}
		var body struct {
			Data struct {
				ProfileType string `json:"profileType"`
			} `json:"data"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Data.ProfileType
	}

	if got := status(); got != "unknown" {
		t.Errorf("profileType = %q, want unknown", got)
	}

	resp := postProfile(t, app, token, `{
		"address": "Minsk",
		"phoneNumber": "+375 (29) 123-45-67",
		"birthDate": "1990-03-14"
	}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d", resp.Code)
	}

	if got := status(); got != "client" {
		t.Errorf("profileType = %q, want client", got)
	}

	// Missing profile -> 404 on the detail endpoint for a fresh account.
	other := models.User{Email: "other@example.com", Role: "client"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/profile/", nil)
	req.Header.Set("Authorization", "Bearer "+signDashboardToken(t, other.ID, "client"))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("detail status = %d, want 404", rec.Code)
	}
}
