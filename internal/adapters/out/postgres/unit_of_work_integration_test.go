package postgres_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "showcase/internal/adapters/out/postgres"
	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"
	"showcase/internal/core/ports"
	"showcase/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	logs      *bytes.Buffer
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn, discardLogger())
	suite.Require().NoError(err)
	suite.db = db

	suite.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(suite.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.logs.Reset()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndTracks() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.True(o.ID().IsEqual(tracked[0].ID))

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.New, stored.Status())

	suite.Contains(suite.logs.String(), "Unit of work committed")
	suite.Contains(suite.logs.String(), o.ID().String())
	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates(), "commit resets tracking")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DoesNotLogCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.NotContains(suite.logs.String(), "Unit of work committed")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_WritesImmediately() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	orders, err := suite.factory.Create().OrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeliveredOrderWorkflow() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	for _, step := range []struct {
		next    order.Status
		applied bool
		stored  order.Status
	}{
		{order.InProgress, true, order.InProgress},
		{order.Delivered, true, order.Delivered},
		{order.Cancelled, false, order.Delivered},
		{order.New, true, order.New},
	} {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		loaded, getErr := uow.OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(getErr)

		suite.Equal(step.applied, loaded.SetStatus(step.next))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
		suite.Require().NoError(uow.Commit(ctx))

		stored, getErr := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(getErr)
		suite.Equal(step.stored, stored.Status())
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
