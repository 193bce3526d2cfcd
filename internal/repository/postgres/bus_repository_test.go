package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/errors"
)

// BusRepositoryTestSuite tests bus types, stops, routes and schedules
type BusRepositoryTestSuite struct {
	repositorySuite
}

func TestBusRepositorySuite(t *testing.T) {
	suite.Run(t, new(BusRepositoryTestSuite))
}

func (s *BusRepositoryTestSuite) TestStop_LocationOptional() {
	stops, err := s.repos.BusStops.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(stops, 3)
	s.Require().NotNil(stops[0].Location)
	s.Equal("26.5000", stops[0].Location.Latitude)
	s.Nil(stops[1].Location)
	s.Equal("central library", *stops[1].Landmark)
}

func (s *BusRepositoryTestSuite) TestRoute_HydratesStops() {
	route, err := s.repos.BusRoutes.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("main gate", route.FromStop.Name)
	s.Equal("hostel", route.ToStop.Name)
	s.Require().Len(route.ViaStops, 1)
	s.Equal("library", route.ViaStops[0].Name)
}

func (s *BusRepositoryTestSuite) TestSchedule_HydratesRouteAndType() {
	schedule, err := s.repos.BusSchedules.GetByID(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("08:00:00", schedule.StartTime.String())
	s.Equal("loop", schedule.Route.Name)
	s.Equal("library", schedule.Route.ViaStops[0].Name)
	s.Equal("ac", schedule.BusType.Name)
	s.Require().NotNil(schedule.EndTime)
	s.Equal("08:30:00", schedule.EndTime.String())
	s.Require().Len(schedule.ViaStopTimes, 1)
	s.Equal("08:15:00", schedule.ViaStopTimes[0].String())
}

func (s *BusRepositoryTestSuite) TestSchedule_FindByNaturalKey() {
	start := domain.MustTimeOfDay("08:00")
	routeID, typeID := int64(1), int64(1)

	schedule, err := s.repos.BusSchedules.Find(s.ctx, domain.BusScheduleKey{
		StartTime: &start, RouteID: &routeID, BusTypeID: &typeID,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), schedule.ID)
}

func (s *BusRepositoryTestSuite) TestSchedule_CreateWithNullViaTime() {
	route, err := s.repos.BusRoutes.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	busType, err := s.repos.BusTypes.GetByID(s.ctx, 1)
	s.Require().NoError(err)

	at := domain.MustTimeOfDay("09:10")
	created, err := s.repos.BusSchedules.Create(s.ctx, &domain.BusSchedule{
		StartTime:    domain.MustTimeOfDay("09:00"),
		Route:        route,
		BusType:      busType,
		ViaStopTimes: []*domain.TimeOfDay{nil, &at},
	})
	s.Require().NoError(err)
	s.Nil(created.EndTime)
	s.Require().Len(created.ViaStopTimes, 2)
	s.Nil(created.ViaStopTimes[0])
	s.Equal("09:10:00", created.ViaStopTimes[1].String())

	_, err = s.repos.BusSchedules.Create(s.ctx, &domain.BusSchedule{
		StartTime: domain.MustTimeOfDay("09:00"),
		Route:     route,
		BusType:   busType,
	})
	s.ErrorIs(err, errors.ErrBusScheduleAlreadyExists)
}

// ============================================================================
// Referential integrity
// ============================================================================

func (s *BusRepositoryTestSuite) TestDeleteStop_UsedAsViaStop() {
	s.ErrorIs(s.repos.BusStops.Delete(s.ctx, 2), errors.ErrBusStopInUse)

	_, err := s.repos.BusStops.GetByID(s.ctx, 2)
	s.NoError(err)
}

func (s *BusRepositoryTestSuite) TestDeleteRoute_UsedBySchedule() {
	s.ErrorIs(s.repos.BusRoutes.Delete(s.ctx, 1), errors.ErrBusRouteInUse)
}

func (s *BusRepositoryTestSuite) TestDeleteType_UsedBySchedule() {
	s.ErrorIs(s.repos.BusTypes.Delete(s.ctx, 1), errors.ErrBusTypeInUse)
}

func (s *BusRepositoryTestSuite) TestDeleteChain_InOrder() {
	s.Require().NoError(s.repos.BusSchedules.Delete(s.ctx, 1))
	s.Require().NoError(s.repos.BusRoutes.Delete(s.ctx, 1))
	s.Require().NoError(s.repos.BusStops.Delete(s.ctx, 2))
	s.Require().NoError(s.repos.BusTypes.Delete(s.ctx, 1))

	s.ErrorIs(s.repos.BusTypes.Delete(s.ctx, 1), errors.ErrBusTypeNotFound)
}

func (s *BusRepositoryTestSuite) TestCreateStop_Duplicate() {
	_, err := s.repos.BusStops.Create(s.ctx, &domain.BusStop{Name: "library"})
	s.ErrorIs(err, errors.ErrBusStopAlreadyExists)
}
