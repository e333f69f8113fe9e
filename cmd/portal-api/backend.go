package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/repository"
	"github.com/noah-isme/college-portal-api/internal/repository/mongodb"
	"github.com/noah-isme/college-portal-api/internal/service"
	"github.com/noah-isme/college-portal-api/pkg/config"
	"github.com/noah-isme/college-portal-api/pkg/database"
)

// backend is the opened persistence layer for the configured driver.
type backend struct {
	repos   service.Repositories
	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*backend, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		logr.Info("connected to postgres", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
		return &backend{
			repos: service.Repositories{
				Colleges:  repository.NewCollegeRepository(db),
				Students:  repository.NewStudentRepository(db),
				Teachers:  repository.NewTeacherRepository(db),
				ExamTasks: repository.NewExamTaskRepository(db),
				Results:   repository.NewResultRepository(db),
			},
			ping:    db.PingContext,
			migrate: func(context.Context) error {
				return database.Migrate(db.DB, logr)
			},
			close: func(context.Context) error { return db.Close() },
		}, nil

	default:
		client, db, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		logr.Info("connected to mongo", zap.String("database", cfg.Mongo.Database))
		store := mongodb.NewStore(db)
		return &backend{
			repos: service.Repositories{
				Colleges:  store.Colleges,
				Students:  store.Students,
				Teachers:  store.Teachers,
				ExamTasks: store.ExamTasks,
				Results:   store.Results,
			},
			ping:    store.Ping,
			migrate: store.EnsureIndexes,
			close:   client.Disconnect,
		}, nil
	}
}
