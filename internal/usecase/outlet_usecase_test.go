package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-api/internal/domain"
	"github.com/campus-api/internal/pkg/errors"
	"github.com/campus-api/internal/usecase"
	"github.com/campus-api/internal/usecase/dto"
)

type outletFixture struct {
	uc      *usecase.FoodOutletUseCase
	outlets *MockFoodOutletRepository
	items   *MockMenuItemRepository
	stream  *MockStreamRepository
}

func newOutletFixture() *outletFixture {
	f := &outletFixture{
		outlets: new(MockFoodOutletRepository),
		items:   new(MockMenuItemRepository),
		stream:  new(MockStreamRepository),
	}
	events := usecase.NewEventPublisher(f.stream, domain.StreamCampusChanges, zap.NewNop())
	f.uc = usecase.NewFoodOutletUseCase(f.outlets, f.items, events, zap.NewNop())
	return f
}

// expectEvent ожидает ровно одно событие с указанными полями
func expectEvent(stream *MockStreamRepository, entity string, action domain.ChangeAction, id int64) {
	stream.On("PublishChange", mock.Anything, domain.StreamCampusChanges,
		mock.MatchedBy(func(e domain.ChangeEvent) bool {
			return e.Entity == entity && e.Action == action && e.ID == id && !e.At.IsZero()
		}),
	).Return(nil).Once()
}

func TestFoodOutletUseCase_Create_LowercasesAndPublishes(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	f.outlets.On("Find", ctx, domain.FoodOutletKey{Name: strPtr("canteen")}).
		Return(nil, errors.ErrFoodOutletNotFound)
	f.outlets.On("Create", ctx, mock.MatchedBy(func(o *domain.FoodOutlet) bool {
		return o.Name == "canteen" &&
			*o.Landmark == "hall 1" &&
			o.OpenTime.String() == "09:00:00" &&
			o.Location.Latitude == "26.5123" &&
			*o.Image == "https://img/Canteen.png"
	})).Return(&domain.FoodOutlet{ID: 7, Name: "canteen"}, nil)
	expectEvent(f.stream, domain.EntityFoodOutlet, domain.ActionCreated, 7)

	outlet, err := f.uc.Create(ctx, dto.CreateFoodOutletRequest{
		Name:     "Canteen",
		Location: &dto.LocationRequest{Latitude: "26.5123", Longitude: "80.2329"},
		Landmark: strPtr("Hall 1"),
		OpenTime: strPtr("09:00"),
		Image:    strPtr("https://img/Canteen.png"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), outlet.ID)
	f.outlets.AssertExpectations(t)
	f.stream.AssertExpectations(t)
}

func TestFoodOutletUseCase_Create_AlreadyExists(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	f.outlets.On("Find", ctx, mock.Anything).Return(&domain.FoodOutlet{ID: 1, Name: "canteen"}, nil)

	_, err := f.uc.Create(ctx, dto.CreateFoodOutletRequest{Name: "canteen"})

	assert.ErrorIs(t, err, errors.ErrFoodOutletAlreadyExists)
	f.outlets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.stream.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_Create_ProbeErrorIsReturned(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	f.outlets.On("Find", ctx, mock.Anything).Return(nil, errors.ErrDatabaseError)

	_, err := f.uc.Create(ctx, dto.CreateFoodOutletRequest{Name: "canteen"})

	assert.ErrorIs(t, err, errors.ErrDatabaseError)
	f.outlets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_Create_InvalidTime(t *testing.T) {
	f := newOutletFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateFoodOutletRequest{
		Name:      "canteen",
		CloseTime: strPtr("25:00"),
	})

	assert.ErrorIs(t, err, errors.ErrInvalidTimeFormat)
	f.outlets.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_Update_MergesProvidedFields(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	open := domain.MustTimeOfDay("09:00")
	existing := &domain.FoodOutlet{
		ID:       1,
		Name:     "canteen",
		Landmark: strPtr("hall 1"),
		OpenTime: &open,
		Rating:   floatPtr(4.2),
	}
	f.outlets.On("GetByID", ctx, int64(1)).Return(existing, nil)
	f.outlets.On("Update", ctx, mock.MatchedBy(func(o *domain.FoodOutlet) bool {
		return o.Name == "canteen" &&
			*o.Landmark == "hall 3" &&
			o.OpenTime.String() == "09:00:00" &&
			*o.Rating == 4.8
	})).Return(existing, nil)
	expectEvent(f.stream, domain.EntityFoodOutlet, domain.ActionUpdated, 1)

	_, err := f.uc.Update(ctx, 1, dto.UpdateFoodOutletRequest{
		Landmark: strPtr("HALL 3"),
		Rating:   floatPtr(4.8),
	})

	require.NoError(t, err)
	f.outlets.AssertExpectations(t)
}

func TestFoodOutletUseCase_Update_InvalidTimeKeepsOutlet(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	existing := &domain.FoodOutlet{ID: 1, Name: "canteen"}
	f.outlets.On("GetByID", ctx, int64(1)).Return(existing, nil)

	_, err := f.uc.Update(ctx, 1, dto.UpdateFoodOutletRequest{
		Name:     strPtr("renamed"),
		OpenTime: strPtr("9am"),
	})

	assert.ErrorIs(t, err, errors.ErrInvalidTimeFormat)
	assert.Equal(t, "canteen", existing.Name)
	f.outlets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_Delete_NotFound(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	f.outlets.On("Delete", ctx, int64(9)).Return(errors.ErrFoodOutletNotFound)

	err := f.uc.Delete(ctx, 9)

	assert.ErrorIs(t, err, errors.ErrFoodOutletNotFound)
	f.stream.AssertNotCalled(t, "PublishChange", mock.Anything, mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_AddMenuItem(t *testing.T) {
	ctx := context.Background()
	outlet := &domain.FoodOutlet{
		ID:   1,
		Name: "canteen",
		Menu: []*domain.MenuItem{{ID: 2, Name: "maggi", OutletID: 1}},
	}

	t.Run("duplicate name within outlet", func(t *testing.T) {
		f := newOutletFixture()
		f.outlets.On("GetByID", ctx, int64(1)).Return(outlet, nil)

		_, err := f.uc.AddMenuItem(ctx, 1, dto.CreateMenuItemRequest{Name: "Maggi", Price: intPtr(40)})

		assert.ErrorIs(t, err, errors.ErrMenuItemAlreadyExists)
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("outlet missing", func(t *testing.T) {
		f := newOutletFixture()
		f.outlets.On("GetByID", ctx, int64(5)).Return(nil, errors.ErrFoodOutletNotFound)

		_, err := f.uc.AddMenuItem(ctx, 5, dto.CreateMenuItemRequest{Name: "tea", Price: intPtr(10)})

		assert.ErrorIs(t, err, errors.ErrFoodOutletNotFound)
	})

	t.Run("created for outlet", func(t *testing.T) {
		f := newOutletFixture()
		f.outlets.On("GetByID", ctx, int64(1)).Return(outlet, nil)
		f.items.On("Create", ctx, mock.MatchedBy(func(i *domain.MenuItem) bool {
			return i.Name == "cold coffee" && i.OutletID == 1 && i.Price == 60 && *i.Size == "large"
		})).Return(&domain.MenuItem{ID: 3, Name: "cold coffee", OutletID: 1, Price: 60}, nil)
		expectEvent(f.stream, domain.EntityMenuItem, domain.ActionCreated, 3)

		item, err := f.uc.AddMenuItem(ctx, 1, dto.CreateMenuItemRequest{
			Name:  "Cold Coffee",
			Price: intPtr(60),
			Size:  strPtr("Large"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), item.ID)
		f.items.AssertExpectations(t)
		f.stream.AssertExpectations(t)
	})
}

func TestFoodOutletUseCase_MenuItemOfAnotherOutletIsNotFound(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	f.outlets.On("GetByID", ctx, int64(2)).Return(&domain.FoodOutlet{ID: 2, Name: "juice corner"}, nil)
	f.items.On("GetByID", ctx, int64(1)).Return(&domain.MenuItem{ID: 1, Name: "samosa", OutletID: 1}, nil)

	_, err := f.uc.UpdateMenuItem(ctx, 2, 1, dto.UpdateMenuItemRequest{Price: intPtr(20)})
	assert.ErrorIs(t, err, errors.ErrMenuItemNotFound)

	err = f.uc.DeleteMenuItem(ctx, 2, 1)
	assert.ErrorIs(t, err, errors.ErrMenuItemNotFound)

	f.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFoodOutletUseCase_DeleteMenuItem(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	item := &domain.MenuItem{ID: 1, Name: "samosa", OutletID: 1}
	f.outlets.On("GetByID", ctx, int64(1)).Return(&domain.FoodOutlet{ID: 1}, nil)
	f.items.On("GetByID", ctx, int64(1)).Return(item, nil)
	f.items.On("Delete", ctx, item).Return(nil)
	expectEvent(f.stream, domain.EntityMenuItem, domain.ActionDeleted, 1)

	require.NoError(t, f.uc.DeleteMenuItem(ctx, 1, 1))
	f.items.AssertExpectations(t)
	f.stream.AssertExpectations(t)
}

func searchOutlets() []*domain.FoodOutlet {
	open, closeAt := domain.MustTimeOfDay("09:00"), domain.MustTimeOfDay("21:00")
	return []*domain.FoodOutlet{
		{
			ID:        1,
			Name:      "canteen",
			Location:  &domain.Location{Latitude: "26.5123", Longitude: "80.2329"},
			OpenTime:  &open,
			CloseTime: &closeAt,
			Rating:    floatPtr(4.2),
			Menu:      []*domain.MenuItem{{ID: 1, Name: "samosa"}},
		},
		{ID: 2, Name: "juice corner", Rating: floatPtr(3.5)},
	}
}

func TestFoodOutletUseCase_Search(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.FilterRequest
		expected []int64
	}{
		{name: "no filters", req: dto.FilterRequest{}, expected: []int64{1, 2}},
		{name: "name is lowercased", req: dto.FilterRequest{Name: strPtr("JUICE")}, expected: []int64{2}},
		{name: "food item", req: dto.FilterRequest{FoodItem: strPtr("Samosa")}, expected: []int64{1}},
		{name: "open now", req: dto.FilterRequest{CurrentTime: strPtr("20:59")}, expected: []int64{1}},
		{name: "closing time excluded", req: dto.FilterRequest{CurrentTime: strPtr("21:00")}, expected: []int64{}},
		{
			name:     "near location",
			req:      dto.FilterRequest{Location: &dto.LocationRequest{Latitude: "26.5130", Longitude: "80.2330"}},
			expected: []int64{1},
		},
		{name: "nothing matches", req: dto.FilterRequest{Rating: floatPtr(5)}, expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOutletFixture()
			f.outlets.On("List", mock.Anything).Return(searchOutlets(), nil)

			result, err := f.uc.Search(context.Background(), tt.req)

			require.NoError(t, err)
			ids := make([]int64, 0, len(result))
			for _, o := range result {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFoodOutletUseCase_Search_InvalidInput(t *testing.T) {
	f := newOutletFixture()
	ctx := context.Background()

	_, err := f.uc.Search(ctx, dto.FilterRequest{
		Location: &dto.LocationRequest{Latitude: "north", Longitude: "80.2"},
	})
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)

	_, err = f.uc.Search(ctx, dto.FilterRequest{CurrentTime: strPtr("noon")})
	assert.ErrorIs(t, err, errors.ErrInvalidTimeFormat)

	f.outlets.AssertNotCalled(t, "List", mock.Anything)
}
