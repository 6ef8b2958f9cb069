package main

import (
	"fmt"

	"github.com/LINMINXUAN/aphelion-apollo-pos/configs"
	"github.com/LINMINXUAN/aphelion-apollo-pos/middlewares"
	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/logger"
	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"
	"github.com/LINMINXUAN/aphelion-apollo-pos/routes"
	"github.com/LINMINXUAN/aphelion-apollo-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel)

	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("open store failed")
	}

	catalog := services.NewCatalogService(store, log)
	orders := services.NewOrderService(store, catalog, services.AnyTransition{}, log)
	stats := services.NewStatisticsService(store, log)

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, catalog, orders, stats)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(cfg *configs.Config, log zerolog.Logger) (repository.Store, error) {
	switch cfg.StoreDriver {
	case "file":
		return repository.OpenBlobStore(cfg.BlobPath, log)
	default:
		db, err := configs.OpenDatabase(cfg.DBSource)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db, log)
	}
}
