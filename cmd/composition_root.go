package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "delivery/internal/adapters/in/http"
	"delivery/internal/adapters/out/kafka"
	"delivery/internal/adapters/out/postgres"
	"delivery/internal/adapters/out/postgres/shipperrepo"
	routingout "delivery/internal/adapters/out/routing"
	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/domain/services"
	"delivery/internal/core/ports"
	"delivery/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together.
// One instance lives for the whole process.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	shippers   ports.ShipperDirectory
	routes     ports.RouteClient
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	routeClient, err := routingout.NewClient(
		config.RoutingBaseURL,
		time.Duration(config.RoutingTimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		log.Fatalf("Invalid routing configuration: %v", err)
	}

	publisher := kafka.NewPublisher(config.KafkaHost, kafka.Topics{
		SessionCompleted:    config.KafkaSessionCompletedTopic,
		AssignmentCompleted: config.KafkaAssignmentCompletedTopic,
		ParcelPostponed:     config.KafkaParcelPostponedTopic,
	})

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		shippers:   shipperrepo.NewGormShipperDirectory(gormDB),
		routes:     routeClient,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateManualAssignmentCommandHandler() commands.CreateManualAssignmentCommandHandler {
	return commands.NewCreateManualAssignmentCommandHandler(c.assignmentUoWFactory(), c.shippers)
}

func (c *CompositionRoot) CreateCreateAutoAssignmentCommandHandler() commands.CreateAutoAssignmentCommandHandler {
	return commands.NewCreateAutoAssignmentCommandHandler(
		c.assignmentUoWFactory(),
		c.shippers,
		c.routes,
		services.NewRoutePlanner(),
		time.Duration(c.config.ServiceTimeMinutes)*time.Minute,
	)
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteSessionCommandHandler() commands.CompleteSessionCommandHandler {
	return commands.NewCompleteSessionCommandHandler(c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateFailSessionCommandHandler() commands.FailSessionCommandHandler {
	return commands.NewFailSessionCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAcceptTaskCommandHandler() commands.AcceptTaskCommandHandler {
	return commands.NewAcceptTaskCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	return commands.NewCompleteTaskCommandHandler(c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateFailTaskCommandHandler() commands.FailTaskCommandHandler {
	return commands.NewFailTaskCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRefuseTaskCommandHandler() commands.RefuseTaskCommandHandler {
	return commands.NewRefuseTaskCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePostponeTaskCommandHandler() commands.PostponeTaskCommandHandler {
	return commands.NewPostponeTaskCommandHandler(c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAutoCloseSessionsCommandHandler() commands.AutoCloseSessionsCommandHandler {
	return commands.NewAutoCloseSessionsCommandHandler(
		c.fullUoWFactory(),
		c.CreateCompleteSessionCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetActiveSessionsQueryHandler() queries.GetActiveSessionsQueryHandler {
	return queries.NewGetActiveSessionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedParcelsQueryHandler() queries.GetUnassignedParcelsQueryHandler {
	return queries.NewGetUnassignedParcelsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateManualAssignmentCommandHandler(),
		c.CreateCreateAutoAssignmentCommandHandler(),
		c.CreateCreateSessionCommandHandler(),
		c.CreateCompleteSessionCommandHandler(),
		c.CreateFailSessionCommandHandler(),
		c.CreateAcceptTaskCommandHandler(),
		c.CreateCompleteTaskCommandHandler(),
		c.CreateFailTaskCommandHandler(),
		c.CreateRefuseTaskCommandHandler(),
		c.CreatePostponeTaskCommandHandler(),
		c.CreateGetActiveSessionsQueryHandler(),
		c.CreateGetUnassignedParcelsQueryHandler(),
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoCloseSessionsCommandHandler(),
		c.config.AutoCloseCronSpec,
		jobs.ShiftWindow{
			StartHour: c.config.ShiftStartHour,
			EndHour:   c.config.ShiftEndHour,
		},
		c.logger,
	)
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
