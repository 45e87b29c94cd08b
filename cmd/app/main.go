package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"burgercounter/cmd"
	counterhttp "burgercounter/internal/adapters/in/http"
	"burgercounter/internal/adapters/out/postgres"
	"burgercounter/internal/adapters/out/postgres/customerrepo"
	"burgercounter/internal/adapters/out/postgres/ledgerrepo"
	"burgercounter/internal/adapters/out/postgres/menurepo"
	"burgercounter/internal/adapters/out/postgres/orderrepo"
	"burgercounter/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetRegisterReportQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&ledgerrepo.MovementDTO{},
		&menurepo.MenuItemDTO{},
		&menurepo.SideDishDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = postgres.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := counterhttp.NewServer(
		counterhttp.CommandHandlers{
			CreateOrder:       app.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
			AddLedgerMovement: app.CreateAddLedgerMovementCommandHandler(),
			CreateMenuItem:    app.CreateCreateMenuItemCommandHandler(),
			UpdateMenuItem:    app.CreateUpdateMenuItemCommandHandler(),
		},
		counterhttp.QueryHandlers{
			GetOrder:             app.CreateGetOrderQueryHandler(),
			GetOrders:            app.CreateGetOrdersQueryHandler(),
			GetKitchenOrders:     app.CreateGetKitchenOrdersQueryHandler(),
			GetMenu:              app.CreateGetMenuQueryHandler(),
			GetSideDishes:        app.CreateGetSideDishesQueryHandler(),
			GetRegisterReport:    app.CreateGetRegisterReportQueryHandler(),
			GetRegisterDashboard: app.CreateGetRegisterDashboardQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
