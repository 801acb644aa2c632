package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/addresses"
	"github.com/caronalabs/carona/services/location"
)

type addressUC struct {
	cfg         *models.Config
	addressRepo addresses.AddressRepo
	userReader  addresses.UserReader
	geocoder    location.Geocoder
}

// NewAddressUC creates a new address use case
func NewAddressUC(
	cfg *models.Config,
	addressRepo addresses.AddressRepo,
	userReader addresses.UserReader,
	geocoder location.Geocoder,
) addresses.AddressUC {
	return &addressUC{
		cfg:         cfg,
		addressRepo: addressRepo,
		userReader:  userReader,
		geocoder:    geocoder,
	}
}

// CreateSaved saves a reusable address for a driver, reverse-geocoding
// the coordinates. Each driver keeps a limited number of saved
// addresses.
func (uc *addressUC) CreateSaved(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {
	user, err := uc.userReader.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("Account not found.")
	}
	if !user.IsDriver {
		return nil, apperr.Forbidden("Only drivers can save addresses.")
	}

	count, err := uc.addressRepo.CountSavedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count saved addresses: %w", err)
	}
	if count >= uc.cfg.Rides.MaxSavedAddresses {
		return nil, apperr.New(fmt.Sprintf("You can save at most %d addresses.", uc.cfg.Rides.MaxSavedAddresses))
	}

	address, err := uc.geocode(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	address.UserID = &userID

	if err := uc.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}

	return address, nil
}

// ListSaved retrieves the driver's saved addresses
func (uc *addressUC) ListSaved(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	list, err := uc.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return list, nil
}

// Delete soft-deletes a saved address owned by the requester
func (uc *addressUC) Delete(ctx context.Context, addressID, userID uuid.UUID) error {
	address, err := uc.addressRepo.GetAddressByID(ctx, addressID)
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}
	if address == nil {
		return apperr.NotFound("Address not found.")
	}
	if address.UserID == nil || *address.UserID != userID {
		return apperr.Forbidden("You do not own this address.")
	}

	if err := uc.addressRepo.SoftDelete(ctx, addressID); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return nil
}

// GetOrCreate resolves a ride endpoint. A known address id is looked
// up; raw coordinates are geocoded into a new unowned address.
func (uc *addressUC) GetOrCreate(ctx context.Context, addressID *uuid.UUID, latitude, longitude *float64) (*models.Address, error) {
	if addressID != nil {
		address, err := uc.addressRepo.GetAddressByID(ctx, *addressID)
		if err != nil {
			return nil, fmt.Errorf("failed to get address: %w", err)
		}
		if address == nil {
			return nil, apperr.NotFound("Address not found.")
		}
		return address, nil
	}

	if latitude == nil || longitude == nil {
		return nil, apperr.New("Location must be given as an address id or coordinates.")
	}

	address, err := uc.geocode(ctx, *latitude, *longitude)
	if err != nil {
		return nil, err
	}

	if err := uc.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to store address: %w", err)
	}

	return address, nil
}

func (uc *addressUC) geocode(ctx context.Context, latitude, longitude float64) (*models.Address, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, apperr.New("Coordinates are out of range.")
	}

	loc, err := uc.geocoder.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode coordinates: %w", err)
	}

	now := time.Now()
	return &models.Address{
		ID:               uuid.New(),
		Latitude:         latitude,
		Longitude:        longitude,
		City:             loc.City,
		FormattedAddress: loc.FormattedAddress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
