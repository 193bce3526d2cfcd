package postgres_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/campus-api/internal/repository/postgres/testhelpers"
)

// repositorySuite - общая подготовка: миграции один раз, свежие фикстуры перед каждым тестом
type repositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repos  *testhelpers.Repositories
	ctx    context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *repositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repos = testhelpers.NewRepositoriesForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *repositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *repositorySuite) SetupTest() {
	s.ctx = context.Background()

	s.Require().NoError(s.testDB.Cleanup(s.ctx), "Failed to cleanup test database")

	err := testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"campus.sql"})
	s.Require().NoError(err, "Failed to load fixtures")
}
