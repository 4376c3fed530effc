package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"trekkit/internal/config"
	"trekkit/internal/logger"
	"trekkit/internal/model"
	mysqlClient "trekkit/internal/platform/mysql"
	rabbitmqClient "trekkit/internal/platform/rabbitmq"
	redisClient "trekkit/internal/platform/redis"
	"trekkit/internal/repository"
	"trekkit/internal/scheduler"
	"trekkit/internal/worker"
)

type App struct {
	Config     *config.Config
	MySQL      *gorm.DB
	Redis      *redis.Client
	MQConn     *amqp.Connection
	MailWorker *worker.MailWorker
	Cleanup    *scheduler.Cleanup

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger.Init(cfg.App.Env)

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.EmailVerification{},
		&model.Mountain{},
		&model.MountainCourse{},
		&model.MountainImage{},
		&model.MountainBookmark{},
		&model.Post{},
		&model.Comment{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionLike{},
		&model.AnswerLike{},
		&model.Notice{},
		&model.StepRecord{},
		&model.PointHistory{},
		&model.Theme{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	mailWorker := worker.NewMailWorker(mqConn, worker.LogSender{}, cfg.RabbitMQ.MailQueue)
	if err := mailWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start mail worker failed: %w", err)
	}

	cleanup := scheduler.NewCleanup(repository.NewVerificationRepository(mysqlDB), cfg.Cleanup.CodeSweepSpec)
	if err := cleanup.Start(); err != nil {
		return nil, fmt.Errorf("start cleanup scheduler failed: %w", err)
	}

	return &App{
		Config:     cfg,
		MySQL:      mysqlDB,
		Redis:      redisCli,
		MQConn:     mqConn,
		MailWorker: mailWorker,
		Cleanup:    cleanup,
		StartedAt:  time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Cleanup != nil {
		a.Cleanup.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MailWorker != nil {
		a.MailWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
