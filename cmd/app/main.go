package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dragontea/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		TelegramBotToken:     goDotEnvVariable("TELEGRAM_BOT_TOKEN"),
		PaymentProviderToken: goDotEnvVariable("PAYMENT_PROVIDER_TOKEN"),
		StaffChatID:          goDotEnvVariable("STAFF_CHAT_ID"),
		StoreLatitude:        goDotEnvVariable("STORE_LATITUDE"),
		StoreLongitude:       goDotEnvVariable("STORE_LONGITUDE"),
		DeliveryRatePerKm:    goDotEnvVariable("DELIVERY_RATE_PER_KM"),
		StoreTimezone:        goDotEnvVariable("STORE_TIMEZONE"),
		ServiceOpenAt:        goDotEnvVariable("SERVICE_OPEN_AT"),
		ServiceCloseAt:       goDotEnvVariable("SERVICE_CLOSE_AT"),
		PendingOrderTTL:      goDotEnvVariable("PENDING_ORDER_TTL"),
		CourierPromptTTL:     goDotEnvVariable("COURIER_PROMPT_TTL"),
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
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateWebhookServer(logger).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
