package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	mongostore "github.com/vladislavdragonenkov/storefront/internal/storage/mongo"
)

// runtimeDependencies содержит репозитории и (опционально) подключение к MongoDB.
type runtimeDependencies struct {
	products domain.ProductRepository
	orders   domain.OrderRepository
	// store не nil только для драйвера mongo; нужен для health check и закрытия.
	store *mongostore.Store
}

// initRuntimeDependencies выбирает хранилище по конфигурации и инициализирует
// репозитории. Подключение создаётся один раз на старте процесса.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		logger.Info("используем in-memory хранилище")
		return &runtimeDependencies{
			products: memory.NewProductRepository(),
			orders:   memory.NewOrderRepository(),
		}, nil

	case StorageDriverMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New("mongo storage driver requires MongoURI")
		}

		store, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}

		if cfg.MongoAutoIndex {
			if err := store.EnsureIndexes(ctx); err != nil {
				_ = store.Close(ctx)
				return nil, fmt.Errorf("ensure indexes: %w", err)
			}
			logger.Info("индексы mongo проверены")
		}

		logger.WithField("database", cfg.MongoDatabase).Info("используем mongo хранилище")
		return &runtimeDependencies{
			products: mongostore.NewProductRepository(store),
			orders:   mongostore.NewOrderRepository(store),
			store:    store,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}

// close освобождает ресурсы хранилища.
func (d *runtimeDependencies) close(ctx context.Context, logger *log.Entry) {
	if d == nil || d.store == nil {
		return
	}
	if err := d.store.Close(ctx); err != nil {
		logger.WithError(err).Warn("failed to close mongo store")
	} else {
		logger.Info("mongo store closed")
	}
}
