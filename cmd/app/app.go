package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/syncbazar/syncbazar-api/internal/api"
	"github.com/syncbazar/syncbazar-api/internal/config"
	"github.com/syncbazar/syncbazar-api/internal/db"
	"github.com/syncbazar/syncbazar-api/internal/logger"
	"github.com/syncbazar/syncbazar-api/internal/repository"
	"github.com/syncbazar/syncbazar-api/internal/repository/dao"
	"github.com/syncbazar/syncbazar-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	if err = seedAdmin(postgresDB, conf.Admin); err != nil {
		return fmt.Errorf("failed to seed admin user -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// seedAdmin creates the default admin account when the user table is empty.
func seedAdmin(postgresDB *gorm.DB, conf *config.AdminConfig) error {
	repo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	svc := service.NewAuthService(repo)

	return svc.EnsureAdmin(context.Background(), conf.Username, conf.Password)
}
