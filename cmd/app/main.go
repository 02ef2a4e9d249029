package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/messagingrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/generated/servers"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := jobs.NewJobManager(app.CreateAdvanceFulfillmentCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:       goDotEnvVariable("REDIS_ADDR"),
		OpenAPISpecPath: goDotEnvVariable("OPENAPI_SPEC_PATH"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&reviewrepo.ReviewDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&cartrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&messagingrepo.ContactMessageDTO{},
		&messagingrepo.SubscriptionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	spec, err := httpin.LoadOpenAPISpec(configs.OpenAPISpecPath)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}

	handlers := httpin.Handlers{
		RegisterCustomer:     app.CreateRegisterCustomerCommandHandler(),
		PlaceOrder:           app.CreatePlaceOrderCommandHandler(),
		RequestCancellation:  app.CreateRequestCancellationCommandHandler(),
		RequestReturn:        app.CreateRequestReturnCommandHandler(),
		AddReview:            app.CreateAddReviewCommandHandler(),
		DeleteReview:         app.CreateDeleteReviewCommandHandler(),
		AddCartItem:          app.CreateAddCartItemCommandHandler(),
		UpdateCartItem:       app.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:       app.CreateRemoveCartItemCommandHandler(),
		AddAddress:           app.CreateAddAddressCommandHandler(),
		SubmitContactMessage: app.CreateSubmitContactMessageCommandHandler(),
		SubscribeNewsletter:  app.CreateSubscribeNewsletterCommandHandler(),

		GetProducts:       app.CreateGetProductsQueryHandler(),
		GetProduct:        app.CreateGetProductQueryHandler(),
		GetReviews:        app.CreateGetReviewsQueryHandler(),
		GetCart:           app.CreateGetCartQueryHandler(),
		GetAddresses:      app.CreateGetAddressesQueryHandler(),
		GetCustomerOrders: app.CreateGetCustomerOrdersQueryHandler(),
	}

	server := httpin.NewServer(handlers, app.CreateSessionStore(), app.CreateCustomerUoWFactory())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, spec)
	})
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
