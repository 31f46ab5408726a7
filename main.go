package main

import (
	"os"

	"tour-agency-server/routes"
	"tour-agency-server/storage"
	"tour-agency-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"go.uber.org/zap"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	catalog := app.Party("/api/catalog")
	{
		catalog.Get("/", routes.GetCatalog)
		catalog.Get("/packages/{id:uint}", routes.GetTourPackage)
	}

	countries := app.Party("/api/countries")
	{
		countries.Get("/", routes.GetCountries)
		countries.Get("/{id:uint}", routes.GetCountry)
	}

	hotels := app.Party("/api/hotels")
	{
		hotels.Get("/", routes.GetHotels)
		hotels.Get("/{id:uint}", routes.GetHotel)
	}

	promocodes := app.Party("/api/promocodes")
	{
		promocodes.Get("/", routes.GetPromoCodes)
	}

	content := app.Party("/api/content")
	{
		content.Get("/articles", routes.GetArticles)
		content.Get("/articles/{id:uint}", routes.GetArticle)
		content.Get("/faq", routes.GetFAQ)
		content.Get("/vacancies", routes.GetVacancies)
		content.Get("/about", routes.GetAbout)
		content.Get("/contacts", routes.GetContacts)
	}

	reviews := app.Party("/api/reviews")
	{
		reviews.Get("/", routes.GetReviews)
		reviews.Post("/", accessTokenVerifierMiddleware, routes.CreateReview)
	}

	orders := app.Party("/api/orders", accessTokenVerifierMiddleware)
	{
		orders.Get("/my", routes.GetMyOrders)
		orders.Get("/", utils.EmployeeOnlyMiddleware, routes.GetAllOrders)
		orders.Get("/{id:uint}", routes.GetOrder)
	}

	profile := app.Party("/api/profile", accessTokenVerifierMiddleware)
	{
		profile.Get("/", routes.GetClientProfile)
		profile.Post("/", routes.CreateOrUpdateClientProfile)
		profile.Put("/", routes.CreateOrUpdateClientProfile)
		profile.Get("/status", routes.GetProfileStatus)
	}

	app.Get("/api/dashboard", accessTokenVerifierMiddleware, routes.GetDashboard)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	utils.Logger().Info("server starting", utils.Field("addr", addr))

	if err := app.Listen(addr); err != nil {
		utils.Logger().Fatal("server failed", zap.Error(err))
	}
}
