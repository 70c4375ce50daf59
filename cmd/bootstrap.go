package cmd

import (
	"context"
	"fmt"
	"log"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/ratelimit"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/storage"
	"catalog/pkg/kafka"
	"catalog/pkg/rabbitmq"

	"gorm.io/gorm"
)

// app holds the wired services of one process.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	auth     *services.AuthService
	products *services.ProductService
	files    *services.FileService
	seed     *services.SeedService
	limiter  ratelimit.Limiter
	events   services.EventPublisher
	mq       *rabbitmq.Client
	closers  []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}
}

// openDatabase loads the configuration and connects to the database.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

// bootstrap wires every service from the environment. withHTTP also
// prepares object storage and the login limiter.
func bootstrap(ctx context.Context, withHTTP bool) (*app, error) {
	cfg, db, err := openDatabase()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, db: db}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	if err := a.connectEvents(); err != nil {
		a.Close()
		return nil, err
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	a.auth = services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	a.products = services.NewProductService(productRepo, a.events)
	a.seed = services.NewSeedService(a.products, a.events)

	if !withHTTP {
		return a, nil
	}

	backend, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}
	if gcs, ok := backend.(*storage.GCSClient); ok {
		a.closers = append(a.closers, gcs.Close)
	}
	a.files = services.NewFileService(storage.NewStorage(backend, "product"), cfg.HostAPI)

	if cfg.RateLimit.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		a.limiter = ratelimit.NewRedisLimiter(client, "catalog:login:", cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow)
	} else {
		a.limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow)
	}

	return a, nil
}

func (a *app) connectEvents() error {
	switch a.cfg.Events.Driver {
	case "none", "":
		return nil
	case "rabbitmq":
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: a.cfg.Events.RabbitMQURL})
		if err != nil {
			return err
		}
		a.mq = client
		a.events = client
		a.closers = append(a.closers, client.Close)
	case "kafka":
		producer := kafka.NewProducer(a.cfg.Events.KafkaBroker, a.cfg.Events.KafkaTopic)
		a.events = producer
		a.closers = append(a.closers, producer.Close)
	default:
		return fmt.Errorf("unsupported EVENTS_DRIVER %q", a.cfg.Events.Driver)
	}
	return nil
}
