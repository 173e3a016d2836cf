package main

import (
	"context"
	"net/http"

	_ "geopindrop/docs"
	"geopindrop/internal/config"
	"geopindrop/internal/geocoder"
	"geopindrop/internal/handler"
	"geopindrop/internal/repository"
	"geopindrop/internal/service"
	"geopindrop/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Geopindrop API
//	@version		1.0
//	@description	Records named locations, resolves their addresses through Nominatim and renders them as pins on a map.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(config.GinMode)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	geo := geocoder.NewClient(config.NominatimBaseURL, config.NominatimUserAgent, log.Logger)

	pinService := service.NewPinService(repo, geo)
	suggestService := service.NewSuggestService(geo)

	pinHandler := handler.NewPinHandler(pinService)
	suggestHandler := handler.NewSuggestHandler(suggestService)
	mapHandler := handler.NewMapHandler(pinService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/suggest", suggestHandler.Suggest)
		api.GET("/pins", pinHandler.List)
		api.POST("/pins", pinHandler.Create)
		api.DELETE("/pins/:id", pinHandler.Delete)
		api.GET("/map", mapHandler.View)
	}

	index, err := web.Static.ReadFile("static/index.html")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load embedded page")
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
