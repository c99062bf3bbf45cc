package dishrepo_test

import (
	"context"
	"testing"
	"time"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DishRepositoryIntegrationTestSuite provides integration tests for
// GormDishRepository using PostgreSQL containers to verify persistence
// behavior.
type DishRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dishrepo.GormDishRepository
}

func (suite *DishRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&dishrepo.DishDTO{}))
}

func (suite *DishRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dishes").Error)
	suite.repository = dishrepo.NewGormDishRepository(suite.db)
}

func (suite *DishRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DishRepositoryIntegrationTestSuite) TestAppend_ValidDish_Success() {
	ctx := context.Background()

	testDish := suite.createTestDish("Taco")

	err := suite.repository.Append(ctx, testDish)
	suite.Require().NoError(err)

	suite.assertDishCount(1)
}

func (suite *DishRepositoryIntegrationTestSuite) TestFindByID_ExistingDish_ReturnsDish() {
	ctx := context.Background()

	original := suite.createTestDish("Taco")
	suite.Require().NoError(suite.repository.Append(ctx, original))

	retrieved, err := suite.repository.FindByID(ctx, original.ID)
	suite.Require().NoError(err)

	suite.Equal(original.ID, retrieved.ID)
	suite.Equal(original.Name, retrieved.Name)
	suite.Equal(original.Description, retrieved.Description)
	suite.Equal(original.Price, retrieved.Price)
	suite.Equal(original.ImageURL, retrieved.ImageURL)
}

func (suite *DishRepositoryIntegrationTestSuite) TestFindByID_NonExistentDish_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.FindByID(ctx, uuid.NewString())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DishRepositoryIntegrationTestSuite) TestUpdate_ExistingDish_ReplacesAllFields() {
	ctx := context.Background()

	original := suite.createTestDish("Taco")
	suite.Require().NoError(suite.repository.Append(ctx, original))

	updated := dish.New(original.ID, "Burrito", "Mild", 12, "http://y")
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.FindByID(ctx, original.ID)
	suite.Require().NoError(err)
	suite.Equal("Burrito", retrieved.Name)
	suite.Equal("Mild", retrieved.Description)
	suite.Equal(12, retrieved.Price)
	suite.Equal("http://y", retrieved.ImageURL)
}

func (suite *DishRepositoryIntegrationTestSuite) TestUpdate_NonExistentDish_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestDish("Taco"))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DishRepositoryIntegrationTestSuite) TestAll_ReturnsInsertionOrder() {
	ctx := context.Background()

	first := suite.createTestDish("Taco")
	second := suite.createTestDish("Burrito")
	third := suite.createTestDish("Quesadilla")
	suite.Require().NoError(suite.repository.Append(ctx, first))
	suite.Require().NoError(suite.repository.Append(ctx, second))
	suite.Require().NoError(suite.repository.Append(ctx, third))

	all, err := suite.repository.All(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal(first.ID, all[0].ID)
	suite.Equal(second.ID, all[1].ID)
	suite.Equal(third.ID, all[2].ID)
}

func (suite *DishRepositoryIntegrationTestSuite) TestAll_EmptyTable_ReturnsEmptySlice() {
	all, err := suite.repository.All(context.Background())
	suite.Require().NoError(err)
	suite.Empty(all)
}

// createTestDish creates a test dish with default values and a fresh id.
func (suite *DishRepositoryIntegrationTestSuite) createTestDish(name string) *dish.Dish {
	return dish.New(uuid.NewString(), name, "Tasty", 8, "http://x")
}

// assertDishCount verifies the number of dishes in the database.
func (suite *DishRepositoryIntegrationTestSuite) assertDishCount(expected int) {
	var count int64
	err := suite.db.Model(&dishrepo.DishDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDishRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DishRepositoryIntegrationTestSuite))
}
