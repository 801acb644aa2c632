package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/vehicles/mocks"
)

func TestRegisterVehicle_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	req := &models.RegisterVehicleRequest{
		Brand: "Fiat",
		Model: "Uno",
		Color: "red",
		Plate: "abc 1234",
		Seats: 4,
	}

	mockRepo.EXPECT().GetVehicleByPlate(gomock.Any(), "ABC1234").Return(nil, nil)
	mockRepo.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v *models.Vehicle) error {
			assert.Equal(t, ownerID, v.OwnerID)
			assert.Equal(t, "ABC1234", v.Plate)
			assert.True(t, v.Active)
			return nil
		})

	// Act
	vehicle, err := uc.Register(context.Background(), ownerID, req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, vehicle)
	assert.Equal(t, "ABC1234", vehicle.Plate)
}

func TestRegisterVehicle_DuplicatePlate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	req := &models.RegisterVehicleRequest{
		Brand: "Fiat",
		Model: "Uno",
		Plate: "ABC1234",
		Seats: 4,
	}

	mockRepo.EXPECT().GetVehicleByPlate(gomock.Any(), "ABC1234").
		Return(&models.Vehicle{ID: uuid.New(), Plate: "ABC1234"}, nil)

	// Act
	vehicle, err := uc.Register(context.Background(), uuid.New(), req)

	// Assert
	assert.Nil(t, vehicle)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 409, ve.Code)
}

func TestRegisterVehicle_NoSeats(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	req := &models.RegisterVehicleRequest{
		Brand: "Fiat",
		Model: "Uno",
		Plate: "ABC1234",
		Seats: 0,
	}

	// Act
	vehicle, err := uc.Register(context.Background(), uuid.New(), req)

	// Assert
	assert.Nil(t, vehicle)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "at least one passenger seat")
}

func TestUpdateVehicle_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	color := " blue "
	seats := 5

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, OwnerID: ownerID, Color: "red", Seats: 4, Active: true}, nil)
	mockRepo.EXPECT().UpdateVehicleFields(gomock.Any(), vehicleID, gomock.Any(), &seats).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, c *string, _ *int) error {
			assert.Equal(t, "blue", *c)
			return nil
		})

	// Act
	vehicle, err := uc.Update(context.Background(), vehicleID, ownerID, &models.UpdateVehicleRequest{
		Color: &color,
		Seats: &seats,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "blue", vehicle.Color)
	assert.Equal(t, 5, vehicle.Seats)
}

func TestUpdateVehicle_NoFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	// Act
	vehicle, err := uc.Update(context.Background(), uuid.New(), uuid.New(), &models.UpdateVehicleRequest{})

	// Assert
	assert.Nil(t, vehicle)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "At least one of color or seats")
}

func TestUpdateVehicle_NotOwner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	vehicleID := uuid.New()
	seats := 3

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, OwnerID: uuid.New(), Active: true}, nil)

	// Act
	vehicle, err := uc.Update(context.Background(), vehicleID, uuid.New(), &models.UpdateVehicleRequest{Seats: &seats})

	// Assert
	assert.Nil(t, vehicle)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestUpdateVehicle_InvalidSeats(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	seats := 0

	// Act
	vehicle, err := uc.Update(context.Background(), uuid.New(), uuid.New(), &models.UpdateVehicleRequest{Seats: &seats})

	// Assert
	assert.Nil(t, vehicle)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "at least one passenger seat")
}

func TestDeactivateVehicle_BlockedByActiveRides(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID, Active: true}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().HasActiveRides(gomock.Any(), vehicleID).Return(true, nil)

	// Act
	err := uc.Deactivate(context.Background(), vehicleID, ownerID)

	// Assert
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "cannot be deactivated")
}

func TestDeactivateVehicle_LastVehicleRevokesDriverFlag(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID, Active: true}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().HasActiveRides(gomock.Any(), vehicleID).Return(false, nil)
	mockRepo.EXPECT().SetActive(gomock.Any(), vehicleID, false).Return(nil)
	mockRepo.EXPECT().CountActiveByOwner(gomock.Any(), ownerID).Return(0, nil)
	mockRepo.EXPECT().SetOwnerIsDriver(gomock.Any(), ownerID, false).Return(nil)

	// Act
	err := uc.Deactivate(context.Background(), vehicleID, ownerID)

	// Assert
	assert.NoError(t, err)
}

func TestDeactivateVehicle_OtherVehiclesKeepDriverFlag(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID, Active: true}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().HasActiveRides(gomock.Any(), vehicleID).Return(false, nil)
	mockRepo.EXPECT().SetActive(gomock.Any(), vehicleID, false).Return(nil)
	mockRepo.EXPECT().CountActiveByOwner(gomock.Any(), ownerID).Return(1, nil)

	// Act
	err := uc.Deactivate(context.Background(), vehicleID, ownerID)

	// Assert
	assert.NoError(t, err)
}

func TestDeactivateVehicle_NotOwner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: uuid.New(), Active: true}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)

	// Act
	err := uc.Deactivate(context.Background(), vehicleID, uuid.New())

	// Assert
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 403, ve.Code)
}

func TestReactivateVehicle_RestoresDriverFlag(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID, Active: false}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().SetActive(gomock.Any(), vehicleID, true).Return(nil)
	mockRepo.EXPECT().SetOwnerIsDriver(gomock.Any(), ownerID, true).Return(nil)

	// Act
	reactivated, err := uc.Reactivate(context.Background(), vehicleID, ownerID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, reactivated.Active)
}

func TestReactivateVehicle_AlreadyActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockVehicleRepo(ctrl)
	uc := NewVehicleUC(&models.Config{}, mockRepo)

	ownerID := uuid.New()
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID, Active: true}

	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicleID).Return(vehicle, nil)

	// Act
	reactivated, err := uc.Reactivate(context.Background(), vehicleID, ownerID)

	// Assert
	assert.Nil(t, reactivated)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "already active")
}
