package onboarding

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, upd repository.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockEventTypeRepository struct {
	mock.Mock
}

func (m *MockEventTypeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func createdEventTypes(m *MockEventTypeRepository) []domain.EventType {
	var out []domain.EventType
	for _, call := range m.Calls {
		if call.Method == "Create" {
			out = append(out, *call.Arguments.Get(1).(*domain.EventType))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func TestSubmit_SeedsDefaultsOnFirstSave(t *testing.T) {
	users := new(MockUserRepository)
	eventTypes := new(MockEventTypeRepository)
	svc := NewService(users, eventTypes, nil)

	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1, Bio: "hello"}, nil)
	eventTypes.On("CountByUser", mock.Anything, int64(1)).Return(int64(0), nil)
	eventTypes.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Submit(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "/", result.RedirectURL)

	created := createdEventTypes(eventTypes)
	require.Len(t, created, 3)
	assert.Equal(t, "15min", created[0].Slug)
	assert.Equal(t, 15, created[0].Length)
	assert.False(t, created[0].Hidden)
	assert.Equal(t, "30min", created[1].Slug)
	assert.Equal(t, 30, created[1].Length)
	assert.Equal(t, "secret", created[2].Slug)
	assert.Equal(t, 15, created[2].Length)
	assert.True(t, created[2].Hidden)
	for _, et := range created {
		assert.Equal(t, int64(1), et.UserID)
	}
}

func TestSubmit_ExistingEventTypes_NoSeeding(t *testing.T) {
	users := new(MockUserRepository)
	eventTypes := new(MockEventTypeRepository)
	svc := NewService(users, eventTypes, nil)

	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1}, nil)
	eventTypes.On("CountByUser", mock.Anything, int64(1)).Return(int64(2), nil)

	_, err := svc.Submit(context.Background(), 1, "hello")
	require.NoError(t, err)

	eventTypes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_SeedingFailuresSwallowed(t *testing.T) {
	users := new(MockUserRepository)
	eventTypes := new(MockEventTypeRepository)
	svc := NewService(users, eventTypes, nil)

	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1}, nil)
	eventTypes.On("CountByUser", mock.Anything, int64(1)).Return(int64(0), nil)
	eventTypes.On("Create", mock.Anything, mock.Anything).Return(errors.New("store flaked"))

	result, err := svc.Submit(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "/", result.RedirectURL)

	// Onboarding completion is the second profile update.
	users.AssertNumberOfCalls(t, "UpdateProfile", 2)
}

func TestSubmit_CountFailureSkipsSeeding(t *testing.T) {
	users := new(MockUserRepository)
	eventTypes := new(MockEventTypeRepository)
	svc := NewService(users, eventTypes, nil)

	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1}, nil)
	eventTypes.On("CountByUser", mock.Anything, int64(1)).Return(int64(0), errors.New("store down"))

	_, err := svc.Submit(context.Background(), 1, "hello")
	require.NoError(t, err)
	eventTypes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	eventTypes := new(MockEventTypeRepository)
	svc := NewService(users, eventTypes, nil)

	users.On("UpdateProfile", mock.Anything, int64(9), mock.Anything).Return(nil, nil)

	_, err := svc.Submit(context.Background(), 9, "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_AvatarOnlyTaggedAvatarSaved(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockEventTypeRepository), nil)

	avatar := "/static/uploads/a.png"
	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1, AvatarURL: avatar}, nil)

	result, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, KindAvatarSaved, result.Kind)
}

func TestUpdateProfile_BioTaggedProfileSaved(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockEventTypeRepository), nil)

	bio := "a few sentences"
	users.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
		Return(&domain.User{ID: 1, Bio: bio}, nil)

	result, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, KindProfileSaved, result.Kind)
}

func TestUpdateProfile_EmptyUpdateRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockEventTypeRepository), nil)

	_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}
