package cmd

import (
	httpadapter "deliveryscheduler/internal/adapters/in/http"
	"deliveryscheduler/internal/adapters/out/postgres"
	"deliveryscheduler/internal/adapters/out/postgres/sourcerepo"
	"deliveryscheduler/internal/adapters/out/redis/couriercache"
	"deliveryscheduler/internal/core/application/usecases/commands"
	"deliveryscheduler/internal/core/application/usecases/queries"
	"deliveryscheduler/internal/core/ports"
	"deliveryscheduler/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	ledger     ports.PaymentLedger
	logger     zerolog.Logger
}

// NewCompositionRoot wires the use cases. cache may be nil, in which case
// courier lookups go straight to the database.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	ledger ports.PaymentLedger,
	cache *couriercache.Cache,
	logger zerolog.Logger,
) CompositionRoot {
	var opts []postgres.Option
	if cache != nil {
		opts = append(opts, postgres.WithCourierDecorator(cache.Wrap))
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, opts...),
		ledger:     ledger,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.SchedulingUoWFactory = FuncSchedulingUoWFactory(func() commands.SchedulingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.ledger, c.logger)
}

func (c *CompositionRoot) CreateUpdateCalendarDayCommandHandler() commands.UpdateCalendarDayCommandHandler {
	var f commands.CalendarUoWFactory = FuncCalendarUoWFactory(func() commands.CalendarUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCalendarDayCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCalendarQueryHandler() queries.GetCalendarQueryHandler {
	return queries.NewGetCalendarQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliverablesQueryHandler() queries.ListDeliverablesQueryHandler {
	return queries.NewListDeliverablesQueryHandler(c.gormDB, sourcerepo.NewGormSourceRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRunConsistencyAuditQueryHandler() queries.RunConsistencyAuditQueryHandler {
	return queries.NewRunConsistencyAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ScheduleDelivery:  c.CreateScheduleDeliveryCommandHandler(),
		UpdateStatus:      c.CreateUpdateStatusCommandHandler(),
		UpdateCalendarDay: c.CreateUpdateCalendarDayCommandHandler(),
		GetCalendar:       c.CreateGetCalendarQueryHandler(),
		ListDeliverables:  c.CreateListDeliverablesQueryHandler(),
		GetStatusHistory:  c.CreateGetStatusHistoryQueryHandler(),
		Audit:             c.CreateRunConsistencyAuditQueryHandler(),
		Sources:           sourcerepo.NewGormSourceRepository(c.gormDB),
	}, c.logger)
}

func (c *CompositionRoot) CreateConsistencyAuditJob() *jobs.ConsistencyAuditJob {
	return jobs.NewConsistencyAuditJob(
		c.CreateRunConsistencyAuditQueryHandler(), c.cfg.Audit.Spec, c.cfg.Audit.Timeout, c.logger,
	)
}

// CreateJobManager returns a manager with the jobs enabled in the config.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var enabled []jobs.Job
	if c.cfg.Audit.Enabled {
		enabled = append(enabled, c.CreateConsistencyAuditJob())
	}
	return jobs.NewJobManager(enabled...)
}

type FuncSchedulingUoWFactory func() commands.SchedulingUoW

func (f FuncSchedulingUoWFactory) Create() commands.SchedulingUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncCalendarUoWFactory func() commands.CalendarUoW

func (f FuncCalendarUoWFactory) Create() commands.CalendarUoW {
	return f()
}
