package queries_test

import (
	"context"
	"testing"
	"time"

	"delivery/internal/adapters/out/postgres/sessionrepo"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveSessionsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveSessionsQueryHandler
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&sessionrepo.SessionDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveSessionsQueryHandler(db)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE sessions CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) saveSession(dto sessionrepo.SessionDTO) {
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_FiltersTerminalAndOrdersByStartTime() {
	base := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	endTime := base.Add(9 * time.Hour)

	laterID := uuid.New()
	earlierID := uuid.New()

	suite.saveSession(sessionrepo.SessionDTO{
		ID: laterID, ShipperID: uuid.New(), Status: int(session.InProgress),
		StartTime: base.Add(time.Hour), TotalTasks: 4, CompletedTasks: 2, Version: 3,
	})
	suite.saveSession(sessionrepo.SessionDTO{
		ID: earlierID, ShipperID: uuid.New(), Status: int(session.Created),
		StartTime: base, TotalTasks: 2, Version: 1,
	})
	suite.saveSession(sessionrepo.SessionDTO{
		ID: uuid.New(), ShipperID: uuid.New(), Status: int(session.Completed),
		StartTime: base, EndTime: &endTime, TotalTasks: 1, CompletedTasks: 1, Version: 2,
	})
	suite.saveSession(sessionrepo.SessionDTO{
		ID: uuid.New(), ShipperID: uuid.New(), Status: int(session.Failed),
		StartTime: base, EndTime: &endTime, TotalTasks: 1, FailedTasks: 1,
		FailReason: "vehicle breakdown", Version: 2,
	})

	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(earlierID.String(), result[0].ID.String())
	suite.Equal(session.Created, result[0].Status)
	suite.Equal(2, result[0].TotalTasks)

	suite.Equal(laterID.String(), result[1].ID.String())
	suite.Equal(session.InProgress, result[1].Status)
	suite.Equal(4, result[1].TotalTasks)
	suite.Equal(2, result[1].CompletedTasks)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveSessionsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveSessionsQuery constructor")
}

func TestGetActiveSessionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveSessionsQueryHandlerTestSuite))
}
