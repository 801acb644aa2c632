package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
)

// Mock Address Repository
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) CreateAddress(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepo) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Address), args.Error(1)
}

func (m *MockAddressRepo) CountSavedByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAddressRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock User Reader
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Mock Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.GeocodedLocation, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeocodedLocation), args.Error(1)
}

func addressTestConfig() *models.Config {
	return &models.Config{
		Rides: models.RidesConfig{MaxSavedAddresses: 4},
	}
}

func TestCreateSaved_DriverOnly(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	userID := uuid.New()
	mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Active: true, IsDriver: false}, nil)

	address, err := uc.CreateSaved(context.Background(), userID, &models.CreateAddressRequest{
		Latitude:  -23.5505,
		Longitude: -46.6333,
	})

	assert.Nil(t, address)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestCreateSaved_LimitReached(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	userID := uuid.New()
	mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Active: true, IsDriver: true}, nil)
	mockRepo.On("CountSavedByUser", mock.Anything, userID).Return(4, nil)

	address, err := uc.CreateSaved(context.Background(), userID, &models.CreateAddressRequest{
		Latitude:  -23.5505,
		Longitude: -46.6333,
	})

	assert.Nil(t, address)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "at most 4 addresses")
}

func TestCreateSaved_Success(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	userID := uuid.New()
	mockUsers.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Active: true, IsDriver: true}, nil)
	mockRepo.On("CountSavedByUser", mock.Anything, userID).Return(1, nil)
	mockGeo.On("ReverseGeocode", mock.Anything, -23.5505, -46.6333).
		Return(&models.GeocodedLocation{City: "São Paulo", FormattedAddress: "Av. Paulista, São Paulo"}, nil)
	mockRepo.On("CreateAddress", mock.Anything, mock.AnythingOfType("*models.Address")).Return(nil)

	address, err := uc.CreateSaved(context.Background(), userID, &models.CreateAddressRequest{
		Latitude:  -23.5505,
		Longitude: -46.6333,
	})

	assert.NoError(t, err)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, userID, *address.UserID)
	mockRepo.AssertExpectations(t)
}

func TestGetOrCreate_ByID(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	addressID := uuid.New()
	existing := &models.Address{ID: addressID, City: "Campinas"}
	mockRepo.On("GetAddressByID", mock.Anything, addressID).Return(existing, nil)

	address, err := uc.GetOrCreate(context.Background(), &addressID, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, existing, address)
}

func TestGetOrCreate_ByCoordinates(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	lat, lng := -22.9068, -43.1729
	mockGeo.On("ReverseGeocode", mock.Anything, lat, lng).
		Return(&models.GeocodedLocation{City: "Rio de Janeiro", FormattedAddress: "Centro, Rio de Janeiro"}, nil)
	mockRepo.On("CreateAddress", mock.Anything, mock.AnythingOfType("*models.Address")).Return(nil)

	address, err := uc.GetOrCreate(context.Background(), nil, &lat, &lng)

	assert.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro", address.City)
	// Endpoint addresses created on the fly belong to nobody
	assert.Nil(t, address.UserID)
}

func TestGetOrCreate_NeitherGiven(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	address, err := uc.GetOrCreate(context.Background(), nil, nil, nil)

	assert.Nil(t, address)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "address id or coordinates")
}

func TestGetOrCreate_CoordinatesOutOfRange(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	lat, lng := 91.0, 0.0

	address, err := uc.GetOrCreate(context.Background(), nil, &lat, &lng)

	assert.Nil(t, address)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "out of range")
}

func TestDeleteAddress_NotOwner(t *testing.T) {
	mockRepo := new(MockAddressRepo)
	mockUsers := new(MockUserReader)
	mockGeo := new(MockGeocoder)
	uc := NewAddressUC(addressTestConfig(), mockRepo, mockUsers, mockGeo)

	addressID := uuid.New()
	ownerID := uuid.New()
	mockRepo.On("GetAddressByID", mock.Anything, addressID).
		Return(&models.Address{ID: addressID, UserID: &ownerID}, nil)

	err := uc.Delete(context.Background(), addressID, uuid.New())

	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}
