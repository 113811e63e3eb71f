package main

import (
	"net/http"
	"os"

	_ "studentboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"studentboard/internal/auth"
	"studentboard/internal/cache"
	"studentboard/internal/config"
	"studentboard/internal/db"
	"studentboard/internal/handler"
	"studentboard/internal/logger"
	"studentboard/internal/model"
	"studentboard/internal/registry"
	"studentboard/internal/repository"
	"studentboard/internal/router"
	"studentboard/internal/service"
)

// boardTables maps board kinds to their backing tables. All four share the
// BoardItem schema.
var boardTables = map[registry.Kind]string{
	registry.KindAnnouncements: "announcements",
	registry.KindEvents:        "events",
	registry.KindTimetable:     "timetable",
	registry.KindResults:       "results",
}

// @title Student Information Board API
// @version 1.0
// @description Department notice board with announcements, events, timetables, results, an archive and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		if err := gormDB.Migrator().DropTable(
			&model.User{}, &model.Student{}, &model.ArchiveRecord{},
		); err != nil {
			log.Warn().Err(err).Msg("drop tables")
		}
		for _, table := range boardTables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Str("table", table).Msg("drop table")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.ArchiveRecord{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}
	for _, table := range boardTables {
		if err := gormDB.Table(table).AutoMigrate(&model.BoardItem{}); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("auto-migrate board table")
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	archiveRepo := repository.NewArchiveRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services and the resource registry
	authService := service.NewAuthService(userRepo, studentRepo, jwtService, tokenStore, cfg.DepartmentToken)

	reg := registry.New()
	reg.Register(registry.KindStudents, service.NewStudentService(studentRepo))
	for kind, table := range boardTables {
		reg.Register(kind, service.NewBoardService(kind, repository.NewBoardRepository(gormDB, table), cacheClient))
	}
	archiveService := service.NewArchiveService(archiveRepo, reg)
	reg.Register(registry.KindArchive, archiveService)

	searchService := service.NewSearchService(reg)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	resourceHandler := handler.NewResourceHandler(reg, archiveService)
	searchHandler := handler.NewSearchHandler(searchService)

	// Register routes
	router.Register(e, cfg, authHandler, resourceHandler, searchHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
