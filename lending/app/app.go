package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lab-lending/lending/config"
	"github.com/Astemirdum/lab-lending/lending/internal/audit"
	"github.com/Astemirdum/lab-lending/lending/internal/handler"
	"github.com/Astemirdum/lab-lending/lending/internal/notify"
	"github.com/Astemirdum/lab-lending/lending/internal/repository"
	"github.com/Astemirdum/lab-lending/lending/internal/repository/memory"
	"github.com/Astemirdum/lab-lending/lending/internal/server"
	"github.com/Astemirdum/lab-lending/lending/internal/service"
	"github.com/Astemirdum/lab-lending/lending/migrations"
	"github.com/Astemirdum/lab-lending/pkg/kafka"
	"github.com/Astemirdum/lab-lending/pkg/logger"
	"github.com/Astemirdum/lab-lending/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repo  repository.Repository
		store audit.Store
	)
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("memory storage: state is lost on restart")
		repo = memory.New()
		store = audit.NewMemoryStore()
	default:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return errors.Wrap(err, "db init")
		}
		defer db.Close()
		pgRepo, err := repository.NewRepository(db, log)
		if err != nil {
			return errors.Wrap(err, "repo")
		}
		repo = pgRepo
		sqlDB := postgres.NewSqlx(db)
		defer sqlDB.Close()
		store = audit.NewPostgresStore(sqlDB, log)
	}

	g, gCtx := errgroup.WithContext(ctx)

	var notifier service.Notifier
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		defer producer.Close()
		notifier = notify.NewKafka(producer, cfg.Kafka.Topic, log)

		group, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		defer group.Close()
		consumer := audit.NewConsumer(store, log)
		g.Go(func() error {
			return kafka.Consume(gCtx, group, consumer, log, cfg.Kafka.Topic)
		})
	} else {
		log.Info("kafka is not configured, events go straight to the audit log")
		notifier = notify.NewDirect(store, log)
	}

	svc := service.NewService(repo, notifier, log,
		service.WithQRTTL(cfg.Transfer.QRTTL),
		service.WithFrontendURL(cfg.Transfer.FrontendURL),
	)
	h := handler.New(svc, store, []byte(cfg.Auth.JWTSecret), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server run")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	err := g.Wait()
	log.Info("Graceful shutdown finished", zap.Error(err))
	return err
}
