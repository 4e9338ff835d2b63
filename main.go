package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/vwoinilowicz/portfolio-backend/src/config"
	"github.com/vwoinilowicz/portfolio-backend/src/database"
	"github.com/vwoinilowicz/portfolio-backend/src/handlers"
	"github.com/vwoinilowicz/portfolio-backend/src/logging"
	"github.com/vwoinilowicz/portfolio-backend/src/middleware"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories/postgres"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("starting server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	if err := middleware.Configure(cfg.JWTSecret, cfg.TokenTTL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token signing")
	}

	handlers.SetErrorDetail(!cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories and services
	pool := db.GetPool()
	adminService := services.NewAdminService(postgres.NewAdminRepository(pool))
	profileService := services.NewProfileService(postgres.NewProfileRepository(pool))
	projectService := services.NewProjectService(postgres.NewProjectRepository(pool))
	experienceService := services.NewExperienceService(postgres.NewExperienceRepository(pool))
	educationService := services.NewEducationService(postgres.NewEducationRepository(pool))
	certificationService := services.NewCertificationService(postgres.NewCertificationRepository(pool))

	// Auto-seed admin user on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		seedAdmin(adminService, cfg)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	setupRoutes(router, db, adminService, profileService, projectService,
		experienceService, educationService, certificationService)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

// seedAdmin creates the first admin account from env on an empty store, so
// deployments can skip the /api/auth/setup call.
func seedAdmin(adminService *services.AdminService, cfg *config.Config) {
	ctx := context.Background()
	hasAdmins, err := adminService.HasAdmins(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing admin users")
		return
	}
	if hasAdmins {
		return
	}

	_, err = adminService.Setup(ctx, services.SetupInput{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create initial admin user")
		return
	}
	log.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
}

// corsConfig allows the public site and admin panel origins; localhost is
// always allowed for development.
func corsConfig(allowedOrigins string) cors.Config {
	origins := map[string]bool{}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}

	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if origins[origin] {
				return true
			}
			return strings.HasPrefix(origin, "http://localhost")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	adminService *services.AdminService,
	profileService *services.ProfileService,
	projectService *services.ProjectService,
	experienceService *services.ExperienceService,
	educationService *services.EducationService,
	certificationService *services.CertificationService,
) {
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(adminService)
	profileHandler := handlers.NewProfileHandler(profileService)
	projectHandler := handlers.NewProjectHandler(projectService)
	contentHandler := handlers.NewContentHandler(experienceService, educationService, certificationService)

	api := router.Group("/api")

	api.GET("/health", healthHandler.HandleHealth)

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/login", middleware.AuthRateLimitMiddleware(), authHandler.HandleLogin)
	auth.POST("/setup", middleware.AuthRateLimitMiddleware(), authHandler.HandleSetup)
	auth.GET("/me", middleware.RequireAuth(), authHandler.HandleMe)

	// Profile (singleton; mutation needs the admin role)
	api.GET("/profile", profileHandler.HandleGet)
	api.PUT("/profile", middleware.RequireAuth(), middleware.RequireAdmin(), profileHandler.HandleUpdate)

	// Projects (mutation needs the admin role)
	api.GET("/projects", projectHandler.HandleList)
	api.GET("/projects/:id", projectHandler.HandleGet)
	api.POST("/projects", middleware.RequireAuth(), middleware.RequireAdmin(), projectHandler.HandleCreate)
	api.PUT("/projects/:id", middleware.RequireAuth(), middleware.RequireAdmin(), projectHandler.HandleUpdate)
	api.DELETE("/projects/:id", middleware.RequireAuth(), middleware.RequireAdmin(), projectHandler.HandleDelete)

	// Experiences, education, certifications: mutation needs authentication
	// only. Kept as-is from the original API contract.
	api.GET("/experiences", contentHandler.HandleListExperiences)
	api.GET("/experiences/:id", contentHandler.HandleGetExperience)
	api.POST("/experiences", middleware.RequireAuth(), contentHandler.HandleCreateExperience)
	api.PUT("/experiences/:id", middleware.RequireAuth(), contentHandler.HandleUpdateExperience)
	api.DELETE("/experiences/:id", middleware.RequireAuth(), contentHandler.HandleDeleteExperience)

	api.GET("/education", contentHandler.HandleListEducation)
	api.GET("/education/:id", contentHandler.HandleGetEducation)
	api.POST("/education", middleware.RequireAuth(), contentHandler.HandleCreateEducation)
	api.PUT("/education/:id", middleware.RequireAuth(), contentHandler.HandleUpdateEducation)
	api.DELETE("/education/:id", middleware.RequireAuth(), contentHandler.HandleDeleteEducation)

	api.GET("/certifications", contentHandler.HandleListCertifications)
	api.GET("/certifications/:id", contentHandler.HandleGetCertification)
	api.POST("/certifications", middleware.RequireAuth(), contentHandler.HandleCreateCertification)
	api.PUT("/certifications/:id", middleware.RequireAuth(), contentHandler.HandleUpdateCertification)
	api.DELETE("/certifications/:id", middleware.RequireAuth(), contentHandler.HandleDeleteCertification)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ruta no encontrada",
		})
	})
}
