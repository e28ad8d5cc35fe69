package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jcastano/gestion-api/internal/application/analytics"
	"github.com/jcastano/gestion-api/internal/application/export"
	"github.com/jcastano/gestion-api/internal/application/usecase"
	infraexcel "github.com/jcastano/gestion-api/internal/infrastructure/excel"
	infrapdf "github.com/jcastano/gestion-api/internal/infrastructure/pdf"
	"github.com/jcastano/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastano/gestion-api/internal/interfaces/http"
	"github.com/jcastano/gestion-api/pkg/config"
	"github.com/jcastano/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// El esquema se prepara al arrancar; si falla no tiene sentido servir.
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparación del esquema")
	}

	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	facturaUC := usecase.NewFacturaUseCase(facturaRepo, clienteRepo, productoRepo, txRunner)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	exportUC := export.NewExportUseCase(
		facturaRepo, movimientoRepo,
		infrapdf.NewMarotoRenderer(), infraexcel.NewExcelizeRenderer(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:    clienteUC,
		ProductoUC:   productoUC,
		FacturaUC:    facturaUC,
		MovimientoUC: movimientoUC,
		DashboardUC:  dashboardUC,
		ExportUC:     exportUC,
		Log:          log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
