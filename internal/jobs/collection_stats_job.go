package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CollectionStatsJob periodically logs the size of the dish and order
// collections. It gives operators a heartbeat and a rough growth signal
// without a metrics stack.
type CollectionStatsJob struct {
	dishes ports.DishRepository
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCollectionStatsJob creates a job that reports collection sizes once a
// minute.
func NewCollectionStatsJob(
	dishes ports.DishRepository,
	orders ports.OrderRepository,
	logger *slog.Logger,
) *CollectionStatsJob {
	return &CollectionStatsJob{
		dishes: dishes,
		orders: orders,
		cron:   cron.New(),
		logger: logger.With("component", "collection_stats_job"),
	}
}

// Start begins the stats job to run every minute.
func (j *CollectionStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		allDishes, err := j.dishes.All(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Collection stats job failed to read dishes", "error", err)
			return
		}

		allOrders, err := j.orders.All(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Collection stats job failed to read orders", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Collection sizes",
			"dishes", len(allDishes),
			"orders", len(allOrders),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Collection stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *CollectionStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Collection stats job stopped")
}
