package cmd

import (
	"log/slog"

	httpadapter "showcase/internal/adapters/in/http"
	"showcase/internal/adapters/out/filesystem"
	"showcase/internal/adapters/out/postgres"
	"showcase/internal/core/application/usecases/commands"
	"showcase/internal/core/application/usecases/queries"
	"showcase/internal/jobs"
	"showcase/internal/pkg/journal"

	"github.com/zoobzio/clockz"
	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide resources: one connection pool, one
// journal and one clock. Everything else is built from them on demand.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	journal    *journal.Journal
	clock      clockz.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		journal:    journal.New(),
		clock:      clockz.RealClock,
		logger:     logger,
	}
}

func (c *CompositionRoot) DB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) Journal() *journal.Journal {
	return c.journal
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateProcessTextCommandHandler() commands.ProcessTextCommandHandler {
	return commands.NewProcessTextCommandHandler()
}

func (c *CompositionRoot) CreateConvertFileCommandHandler() commands.ConvertFileCommandHandler {
	return commands.NewConvertFileCommandHandler(filesystem.NewConverter(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateSetOrderStatusCommandHandler(),
		c.CreateProcessTextCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.journal,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewClockJob(c.clock, c.journal, c.config.ClockJobSchedule, c.logger),
	)
}

func (c *CompositionRoot) CreateDemo() *Demo {
	return NewDemo(DemoOptions{
		Journal:   c.journal,
		Clock:     c.clock,
		Logger:    c.logger,
		Converter: c.CreateConvertFileCommandHandler(),
		InputFile: c.config.DemoInputFile,
		WorkDir:   c.config.DemoWorkDir,
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
