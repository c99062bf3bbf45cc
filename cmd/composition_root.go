package cmd

import (
	"fmt"
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	memdishrepo "grubdash/internal/adapters/out/memory/dishrepo"
	memorderrepo "grubdash/internal/adapters/out/memory/orderrepo"
	pgdishrepo "grubdash/internal/adapters/out/postgres/dishrepo"
	pgorderrepo "grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/core/application/usecases/dishes"
	"grubdash/internal/core/application/usecases/orders"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the repositories, operation handlers, and jobs.
// Constructed once at process start; everything downstream receives its
// collaborators from here.
type CompositionRoot struct {
	dishRepo  ports.DishRepository
	orderRepo ports.OrderRepository
	nextID    ports.IDGenerator
	logger    *slog.Logger
}

// NewCompositionRoot selects the storage backend from config and builds the
// root. DBHost empty means in-memory collections.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		nextID: uuid.NewString,
		logger: logger,
	}

	if config.DBHost == "" {
		root.dishRepo = memdishrepo.NewRepository()
		root.orderRepo = memorderrepo.NewRepository()
		return root, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = db.AutoMigrate(&pgdishrepo.DishDTO{}, &pgorderrepo.OrderDTO{}); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to migrate schema: %w", err)
	}

	root.dishRepo = pgdishrepo.NewGormDishRepository(db)
	root.orderRepo = pgorderrepo.NewGormOrderRepository(db)
	return root, nil
}

// CreateServer builds the HTTP server with every pipeline+handler unit.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		dishes.NewListDishesHandler(c.dishRepo),
		dishes.NewGetDishHandler(c.dishRepo),
		dishes.NewCreateDishHandler(c.dishRepo, c.nextID),
		dishes.NewUpdateDishHandler(c.dishRepo),
		orders.NewListOrdersHandler(c.orderRepo),
		orders.NewGetOrderHandler(c.orderRepo),
		orders.NewCreateOrderHandler(c.orderRepo, c.nextID),
		orders.NewUpdateOrderHandler(c.orderRepo),
		orders.NewDeleteOrderHandler(c.orderRepo),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dishRepo, c.orderRepo, c.logger)
}
