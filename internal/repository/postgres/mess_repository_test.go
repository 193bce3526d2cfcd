package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/errors"
)

// MessRepositoryTestSuite tests messes, mess menus and mess menu items
type MessRepositoryTestSuite struct {
	repositorySuite
}

func TestMessRepositorySuite(t *testing.T) {
	suite.Run(t, new(MessRepositoryTestSuite))
}

func (s *MessRepositoryTestSuite) TestGetMess_HydratesMenu() {
	mess, err := s.repos.Messes.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("hall 2 mess", mess.Name)
	s.Require().NotNil(mess.Timings)
	s.Equal("07:30:00", mess.Timings.Breakfast.Start.String())

	s.Require().NotNil(mess.Menu)
	s.Require().NotNil(mess.Menu.Monday)
	s.Require().Len(mess.Menu.Monday.Lunch, 2)
	s.Equal("dal", mess.Menu.Monday.Lunch[0].Name)
	s.Equal("paneer", mess.Menu.Monday.Lunch[1].Name)
	s.Nil(mess.Menu.Monday.Dinner, "empty meal list hydrates to nil")
	s.Nil(mess.Menu.Tuesday, "day without any meal hydrates to nil")
}

func (s *MessRepositoryTestSuite) TestCreateMess_Duplicate() {
	_, err := s.repos.Messes.Create(s.ctx, &domain.Mess{Name: "hall 2 mess"})
	s.ErrorIs(err, errors.ErrMessAlreadyExists)
}

func (s *MessRepositoryTestSuite) TestSetMenu() {
	created, err := s.repos.Messes.Create(s.ctx, &domain.Mess{Name: "hall 5 mess"})
	s.Require().NoError(err)
	s.Nil(created.Menu)

	updated, err := s.repos.Messes.SetMenu(s.ctx, created.ID, 1)
	s.Require().NoError(err)
	s.Require().NotNil(updated.Menu)
	s.Equal(int64(1), updated.Menu.ID)

	_, err = s.repos.Messes.SetMenu(s.ctx, created.ID, 999)
	s.ErrorIs(err, errors.ErrMessMenuNotFound)

	_, err = s.repos.Messes.SetMenu(s.ctx, 999, 1)
	s.ErrorIs(err, errors.ErrMessNotFound)
}

func (s *MessRepositoryTestSuite) TestDeleteMenu_DetachesMess() {
	s.Require().NoError(s.repos.MessMenus.Delete(s.ctx, 1))

	mess, err := s.repos.Messes.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Nil(mess.Menu)
}

func (s *MessRepositoryTestSuite) TestMessMenuList_Filters() {
	_, err := s.repos.MessMenus.Create(s.ctx, &domain.MessMenu{Month: 4, Year: 2024})
	s.Require().NoError(err)

	all, err := s.repos.MessMenus.List(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Len(all, 2)

	month := 3
	filtered, err := s.repos.MessMenus.List(s.ctx, &month, nil)
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(int64(1), filtered[0].ID)

	year := 2023
	none, err := s.repos.MessMenus.List(s.ctx, nil, &year)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *MessRepositoryTestSuite) TestMessMenuCreate_Duplicate() {
	_, err := s.repos.MessMenus.Create(s.ctx, &domain.MessMenu{Month: 3, Year: 2024})
	s.ErrorIs(err, errors.ErrMessMenuAlreadyExists)
}

func (s *MessRepositoryTestSuite) TestMessMenuFind_ByMonthYear() {
	month, year := 3, 2024
	menu, err := s.repos.MessMenus.Find(s.ctx, domain.MessMenuKey{Month: &month, Year: &year})

	s.Require().NoError(err)
	s.Equal(int64(1), menu.ID)
	s.Len(menu.AllItems(), 3)
}

func (s *MessRepositoryTestSuite) TestMessMenuUpdate_ReplacesLists() {
	menu, err := s.repos.MessMenus.GetByID(s.ctx, 1)
	s.Require().NoError(err)

	items, err := s.repos.MessMenuItems.GetByIDs(s.ctx, []int64{3, 1})
	s.Require().NoError(err)
	menu.SetDay(domain.Sunday, &domain.DayMenu{Dinner: items})

	updated, err := s.repos.MessMenus.Update(s.ctx, menu)
	s.Require().NoError(err)
	s.Require().NotNil(updated.Sunday)
	s.Equal("paneer", updated.Sunday.Dinner[0].Name)
	s.Equal("poha", updated.Sunday.Dinner[1].Name)
	s.NotNil(updated.Monday)
}

func (s *MessRepositoryTestSuite) TestMessMenuItemGetByIDs_Missing() {
	_, err := s.repos.MessMenuItems.GetByIDs(s.ctx, []int64{1, 999})
	s.ErrorIs(err, errors.ErrMessMenuItemNotFound)
}

func (s *MessRepositoryTestSuite) TestMessMenuItemDelete_StripsFromMenus() {
	s.Require().NoError(s.repos.MessMenuItems.Delete(s.ctx, 1))

	menu, err := s.repos.MessMenus.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(menu.Monday)
	s.Nil(menu.Monday.Breakfast)
	s.Len(menu.Monday.Lunch, 2)

	s.ErrorIs(s.repos.MessMenuItems.Delete(s.ctx, 1), errors.ErrMessMenuItemNotFound)
}
