package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/repository/postgres"
	"github.com/campus-api/internal/repository/postgres/testhelpers"
)

// FoodOutletRepositoryTestSuite tests food outlets and their menu items
type FoodOutletRepositoryTestSuite struct {
	repositorySuite
}

func TestFoodOutletRepositorySuite(t *testing.T) {
	suite.Run(t, new(FoodOutletRepositoryTestSuite))
}

// ============================================================================
// Read Tests
// ============================================================================

func (s *FoodOutletRepositoryTestSuite) TestList_AscendingAndHydrated() {
	outlets, err := s.repos.Outlets.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(outlets, 2)
	s.Equal(int64(1), outlets[0].ID)
	s.Equal(int64(2), outlets[1].ID)

	// меню раскрыто в порядке хранения
	s.Require().Len(outlets[0].Menu, 2)
	s.Equal("maggi", outlets[0].Menu[0].Name)
	s.Equal("samosa", outlets[0].Menu[1].Name)
	for _, item := range outlets[0].Menu {
		s.Equal(outlets[0].ID, item.OutletID)
	}

	// пустой список меню - отсутствие меню
	s.Nil(outlets[1].Menu)
	s.Nil(outlets[1].Location)
}

func (s *FoodOutletRepositoryTestSuite) TestGetByID_Scalars() {
	outlet, err := s.repos.Outlets.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("canteen", outlet.Name)
	s.Require().NotNil(outlet.Location)
	s.Equal("26.5123", outlet.Location.Latitude)
	s.Equal("80.2329", outlet.Location.Longitude)
	s.Require().NotNil(outlet.OpenTime)
	s.Equal("09:00:00", outlet.OpenTime.String())
	s.Equal("21:00:00", outlet.CloseTime.String())
	s.Require().NotNil(outlet.Rating)
	s.InDelta(4.2, *outlet.Rating, 0.0001)
}

func (s *FoodOutletRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repos.Outlets.GetByID(s.ctx, 999)
	s.ErrorIs(err, errors.ErrFoodOutletNotFound)
}

func (s *FoodOutletRepositoryTestSuite) TestFind_ByName() {
	name := "juice corner"
	outlet, err := s.repos.Outlets.Find(s.ctx, domain.FoodOutletKey{Name: &name})

	s.Require().NoError(err)
	s.Equal(int64(2), outlet.ID)
}

// ============================================================================
// Write Tests
// ============================================================================

func (s *FoodOutletRepositoryTestSuite) TestCreate_RoundTrip() {
	open := domain.MustTimeOfDay("08:00")
	closeAt := domain.MustTimeOfDay("22:00")

	created, err := s.repos.Outlets.Create(s.ctx, &domain.FoodOutlet{
		Name:      "cafe",
		OpenTime:  &open,
		CloseTime: &closeAt,
	})
	s.Require().NoError(err)
	s.Greater(created.ID, int64(2))

	loaded, err := s.repos.Outlets.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, loaded)
	s.Equal("cafe", loaded.Name)
	s.Nil(loaded.Menu)
	s.Equal("08:00:00", loaded.OpenTime.String())
}

func (s *FoodOutletRepositoryTestSuite) TestCreate_Duplicate() {
	_, err := s.repos.Outlets.Create(s.ctx, &domain.FoodOutlet{Name: "canteen"})
	s.ErrorIs(err, errors.ErrFoodOutletAlreadyExists)
}

func (s *FoodOutletRepositoryTestSuite) TestUpdate_OverwritesRow() {
	outlet, err := s.repos.Outlets.GetByID(s.ctx, 2)
	s.Require().NoError(err)

	landmark := "library"
	outlet.Landmark = &landmark
	outlet.Location = &domain.Location{Latitude: "26.5", Longitude: "80.2"}

	updated, err := s.repos.Outlets.Update(s.ctx, outlet)
	s.Require().NoError(err)
	s.Equal("library", *updated.Landmark)
	s.Equal("26.5", updated.Location.Latitude)
}

func (s *FoodOutletRepositoryTestSuite) TestUpdate_StaleSnapshotKeepsMenu() {
	// снимок точки взят до изменения меню
	snapshot, err := s.repos.Outlets.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal([]int64{2, 1}, snapshot.MenuIDs())

	deleted, err := s.repos.MenuItems.GetByID(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().NoError(s.repos.MenuItems.Delete(s.ctx, deleted))

	added, err := s.repos.MenuItems.Create(s.ctx, &domain.MenuItem{Name: "chai", OutletID: 1, Price: 10})
	s.Require().NoError(err)

	landmark := "main gate"
	snapshot.Landmark = &landmark
	updated, err := s.repos.Outlets.Update(s.ctx, snapshot)
	s.Require().NoError(err)
	s.Equal("main gate", *updated.Landmark)
	s.Equal([]int64{1, added.ID}, updated.MenuIDs())

	menu, err := testhelpers.GetOutletMenu(s.testDB.DB.DB, 1)
	s.Require().NoError(err)
	s.Equal([]int64{1, added.ID}, menu)

	outlets, err := s.repos.Outlets.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(outlets, 2)
	s.NotContains(outlets[0].MenuIDs(), deleted.ID)
}

func (s *FoodOutletRepositoryTestSuite) TestList_SkipsDanglingMenuID() {
	_, err := s.testDB.DB.ExecContext(s.ctx, `UPDATE food_outlets SET menu = '{99,1}' WHERE id = 1`)
	s.Require().NoError(err)

	outlets, err := s.repos.Outlets.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(outlets, 2)
	s.Equal([]int64{1}, outlets[0].MenuIDs())

	_, err = s.testDB.DB.ExecContext(s.ctx, `UPDATE food_outlets SET menu = '{99}' WHERE id = 1`)
	s.Require().NoError(err)

	outlet, err := s.repos.Outlets.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Nil(outlet.Menu)
}

func (s *FoodOutletRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repos.Outlets.Update(s.ctx, &domain.FoodOutlet{ID: 999, Name: "ghost"})
	s.ErrorIs(err, errors.ErrFoodOutletNotFound)
}

func (s *FoodOutletRepositoryTestSuite) TestDelete_CascadesMenuItems() {
	s.Require().NoError(s.repos.Outlets.Delete(s.ctx, 1))

	_, err := s.repos.MenuItems.GetByID(s.ctx, 1)
	s.ErrorIs(err, errors.ErrMenuItemNotFound)

	s.ErrorIs(s.repos.Outlets.Delete(s.ctx, 1), errors.ErrFoodOutletNotFound)
}

// ============================================================================
// Menu Item Tests
// ============================================================================

func (s *FoodOutletRepositoryTestSuite) TestMenuItemCreate_AppendsToOutlet() {
	item, err := s.repos.MenuItems.Create(s.ctx, &domain.MenuItem{Name: "chai", OutletID: 1, Price: 10})
	s.Require().NoError(err)

	menu, err := testhelpers.GetOutletMenu(s.testDB.DB.DB, 1)
	s.Require().NoError(err)
	s.Equal([]int64{2, 1, item.ID}, menu)

	outlet, err := s.repos.Outlets.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(outlet.Menu, 3)
	s.Equal("chai", outlet.Menu[2].Name)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemCreate_FirstItemOfEmptyMenu() {
	item, err := s.repos.MenuItems.Create(s.ctx, &domain.MenuItem{Name: "orange juice", OutletID: 2, Price: 30})
	s.Require().NoError(err)

	menu, err := testhelpers.GetOutletMenu(s.testDB.DB.DB, 2)
	s.Require().NoError(err)
	s.Equal([]int64{item.ID}, menu)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemCreate_UnknownOutlet() {
	_, err := s.repos.MenuItems.Create(s.ctx, &domain.MenuItem{Name: "chai", OutletID: 999, Price: 10})
	s.ErrorIs(err, errors.ErrFoodOutletNotFound)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemCreate_DuplicateRollsBack() {
	_, err := s.repos.MenuItems.Create(s.ctx, &domain.MenuItem{Name: "samosa", OutletID: 1, Price: 20})
	s.ErrorIs(err, errors.ErrMenuItemAlreadyExists)

	menu, err := testhelpers.GetOutletMenu(s.testDB.DB.DB, 1)
	s.Require().NoError(err)
	s.Equal([]int64{2, 1}, menu)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemDelete_RemovesFromOutletAndRow() {
	item, err := s.repos.MenuItems.GetByID(s.ctx, 2)
	s.Require().NoError(err)

	s.Require().NoError(s.repos.MenuItems.Delete(s.ctx, item))

	menu, err := testhelpers.GetOutletMenu(s.testDB.DB.DB, 1)
	s.Require().NoError(err)
	s.Equal([]int64{1}, menu)

	_, err = s.repos.MenuItems.GetByID(s.ctx, 2)
	s.ErrorIs(err, errors.ErrMenuItemNotFound)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemDelete_LastItemClearsMenu() {
	for _, id := range []int64{1, 2} {
		item, err := s.repos.MenuItems.GetByID(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NoError(s.repos.MenuItems.Delete(s.ctx, item))
	}

	outlet, err := s.repos.Outlets.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Nil(outlet.Menu)
}

func (s *FoodOutletRepositoryTestSuite) TestMenuItemFind_ByNameAndOutlet() {
	name := "samosa"
	outletID := int64(1)
	item, err := s.repos.MenuItems.Find(s.ctx, domain.MenuItemKey{Name: &name, OutletID: &outletID})

	s.Require().NoError(err)
	s.Equal(int64(1), item.ID)
	s.Equal(15, item.Price)
}

// ============================================================================
// Natural key lookups never reach the database
// ============================================================================

func TestFind_WithoutKeyIsInvalidRequest(t *testing.T) {
	db := postgres.NewDBForTest(nil, nil)

	lookups := map[string]func() error{
		"outlet": func() error {
			_, err := postgres.NewFoodOutletRepository(db).Find(t.Context(), domain.FoodOutletKey{})
			return err
		},
		"menu item name without outlet": func() error {
			name := "samosa"
			_, err := postgres.NewMenuItemRepository(db).Find(t.Context(), domain.MenuItemKey{Name: &name})
			return err
		},
		"mess": func() error {
			_, err := postgres.NewMessRepository(db).Find(t.Context(), domain.MessKey{})
			return err
		},
		"mess menu month only": func() error {
			month := 3
			_, err := postgres.NewMessMenuRepository(db).Find(t.Context(), domain.MessMenuKey{Month: &month})
			return err
		},
		"mess menu item": func() error {
			_, err := postgres.NewMessMenuItemRepository(db).Find(t.Context(), domain.MessMenuItemKey{})
			return err
		},
		"bus type": func() error {
			_, err := postgres.NewBusTypeRepository(db).Find(t.Context(), domain.BusTypeKey{})
			return err
		},
		"bus stop": func() error {
			_, err := postgres.NewBusStopRepository(db).Find(t.Context(), domain.BusStopKey{})
			return err
		},
		"bus route": func() error {
			_, err := postgres.NewBusRouteRepository(db).Find(t.Context(), domain.BusRouteKey{})
			return err
		},
		"bus schedule partial key": func() error {
			start := domain.MustTimeOfDay("08:00")
			_, err := postgres.NewBusScheduleRepository(db).Find(t.Context(), domain.BusScheduleKey{StartTime: &start})
			return err
		},
	}

	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = lookup() })
			assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		})
	}
}
