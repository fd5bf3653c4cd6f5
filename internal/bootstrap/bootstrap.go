package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/schoolhub/internal/app/auth"
	appControllers "github.com/yigit/schoolhub/internal/app/controllers"
	appMigrations "github.com/yigit/schoolhub/internal/app/migrations"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	appRoutes "github.com/yigit/schoolhub/internal/app/routes"
	appServices "github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/config"
	"github.com/yigit/schoolhub/internal/db"
	appMiddleware "github.com/yigit/schoolhub/internal/middleware"
	pkgAuth "github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/validation"
	"github.com/yigit/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	AdminService      appServices.AdminService
	TeacherService    appServices.TeacherService
	StudentService    appServices.StudentService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	TeacherController *appControllers.TeacherController
	StudentController *appControllers.StudentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Policy            *appAuth.Policy
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	pkgAuth.BcryptCost = cfg.Security.BcryptCost
	validation.Register()

	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	adminSeed := seed.AdminSeed{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}
	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewAdminRepository(database.Pool), adminSeed, lgr); err != nil {
		// Startup continues; an admin can still be inserted by hand.
		lgr.Error().Err(err).Msg("Failed to create bootstrap admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration("jwt.token_expiration", cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.Repos.TeacherRepository, deps.JWTService)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.TeacherRepository)

	var policyOpts []appAuth.PolicyOption
	if cfg.IsDevelopment() {
		policyOpts = append(policyOpts, appAuth.WithPublicPaths(appRoutes.SwaggerPath))
	}
	deps.Policy = appAuth.DefaultPolicy(policyOpts...)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService, deps.Policy)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch cfg.Server.Mode {
	case config.ModeProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.ModeTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	appRoutes.ApplyMiddleware(router, deps.AuthMiddleware, cfg.CORS.AllowedOrigins)

	if cfg.IsDevelopment() {
		appRoutes.SetupSwagger(router)
		lgr.Info().Msg("Swagger UI mounted at /swagger/index.html")
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.TeacherController,
		deps.StudentController,
	)

	// Health check; requires a token like every non-public route.
	router.GET("/ping", func(c *gin.Context) {
		appMiddleware.RespondJSON(c, http.StatusOK, "pong", nil)
	})

	return router
}
