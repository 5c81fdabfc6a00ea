package cmd

import (
	"log/slog"

	"printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteSubProcessCommandHandler() commands.CompleteSubProcessCommandHandler {
	return commands.NewCompleteSubProcessCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChooseDeliveryModeCommandHandler() commands.ChooseDeliveryModeCommandHandler {
	return commands.NewChooseDeliveryModeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachDesignLinkCommandHandler() commands.AttachDesignLinkCommandHandler {
	return commands.NewAttachDesignLinkCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderVersionQueryHandler() queries.GetOrderVersionQueryHandler {
	return queries.NewGetOrderVersionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCompleteSubProcessCommandHandler(),
		c.CreateChooseDeliveryModeCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateAttachDesignLinkCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderVersionQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
