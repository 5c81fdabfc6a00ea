package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CourierPickupJob reminds operators about finished shipping-company orders
// that still have no courier designated. It only observes and logs; assigning
// a courier stays a manager action on the API.
type CourierPickupJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCourierPickupJob creates a job that scans active orders every minute.
func NewCourierPickupJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *CourierPickupJob {
	return &CourierPickupJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "courier_pickup_job"),
	}
}

// Start begins the courier pickup reminder job to run every minute.
func (j *CourierPickupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		if err := j.remind(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Courier pickup job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier pickup job started (running every minute)")
	return nil
}

// Stop stops the courier pickup reminder job.
func (j *CourierPickupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier pickup job stopped")
}

func (j *CourierPickupJob) remind(ctx context.Context) error {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	// The job never mutates anything, so the transaction always rolls back.
	defer func() { _ = uow.Rollback(ctx) }()

	orders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.Status() != order.ReadyForDelivery {
			continue
		}

		delivery := o.Delivery()
		if delivery == nil || delivery.Mode() != order.DeliveryModeShippingCompany {
			continue
		}

		if delivery.AssignedCourier() == nil {
			j.logger.WarnContext(ctx, "Order awaits courier pickup",
				"orderId", o.ID().String(),
				"orderNumber", o.OrderNumber(),
				"shipmentCompany", delivery.ShipmentCompany(),
			)
		}
	}

	return nil
}
