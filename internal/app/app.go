package app

import (
	"database/sql"
	"net/http"

	"go-hrms/internal/config"
	"go-hrms/internal/database"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the connections opened by a binary.
type Infra struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

// ConnectDatabase opens postgres through gorm and returns both handles.
func ConnectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.Database.MaxRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects infrastructure, wires every feature and mounts the
// HTTP routes on router.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	gormDB, sqlDB, err := ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, DB: sqlDB}
	logger.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := database.MigrateUp(sqlDB); err != nil {
			infra.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, 5)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb
	logger.Info("redis connection established")

	m, err := buildModules(sqlDB, gormDB, rdb, logger)
	if err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})
	registerRoutes(router, m, cfg, rdb, logger)

	return infra, nil
}
