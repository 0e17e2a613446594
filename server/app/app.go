package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shareit-lab/shareit-service/pkg/kafka"
	"github.com/shareit-lab/shareit-service/pkg/logger"
	"github.com/shareit-lab/shareit-service/pkg/postgres"
	"github.com/shareit-lab/shareit-service/server/config"
	"github.com/shareit-lab/shareit-service/server/internal/events"
	"github.com/shareit-lab/shareit-service/server/internal/handler"
	"github.com/shareit-lab/shareit-service/server/internal/repository"
	"github.com/shareit-lab/shareit-service/server/internal/server"
	"github.com/shareit-lab/shareit-service/server/internal/service"
	"github.com/shareit-lab/shareit-service/server/migrations"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "shareit")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	pub := events.Nop()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		pub = events.NewPublisher(producer, kafka.BookingEventsTopic, log)
	}

	svc := service.NewService(repo, pub, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server run", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
