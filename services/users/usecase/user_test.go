package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/caronalabs/carona/internal/pkg/apperr"
	"github.com/caronalabs/carona/internal/pkg/models"
)

// Mock User Repository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepo) RecalculateAverageRating(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock User Gateway
type MockUserGW struct {
	mock.Mock
}

func (m *MockUserGW) PublishUserRegistered(ctx context.Context, event models.AccountEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockUserGW) PublishAccountDeactivated(ctx context.Context, event models.AccountEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockUserGW) PublishAccountReactivated(ctx context.Context, event models.AccountEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "carona-test",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	req := &models.RegisterUserRequest{
		Name:     "Ana Souza",
		Email:    " Ana@Example.COM ",
		Password: "secret123",
	}

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	mockGW.On("PublishUserRegistered", mock.Anything, mock.Anything).Return(nil)

	user, err := uc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.True(t, user.Active)
	// Password must be stored hashed, never verbatim
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	mockRepo.AssertExpectations(t)
	mockGW.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	req := &models.RegisterUserRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "secret123",
	}

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&models.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	user, err := uc.Register(context.Background(), req)

	assert.Nil(t, user)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 409, ve.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	req := &models.RegisterUserRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "abc",
	}

	user, err := uc.Register(context.Background(), req)

	assert.Nil(t, user)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "at least 6 characters")
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		Password: string(hashed),
		Active:   true,
	}

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.UserID)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		Password: string(hashed),
		Active:   true,
	}

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	assert.Nil(t, resp)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 401, ve.Code)
}

func TestLogin_ReactivatesInactiveAccount(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		Password: string(hashed),
		Active:   false,
	}

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	mockRepo.On("SetActive", mock.Anything, user.ID, true).Return(nil)
	mockGW.On("PublishAccountReactivated", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	mockRepo.AssertExpectations(t)
	mockGW.AssertExpectations(t)
}

func TestUpdateProfile_EmailTakenByAnotherAccount(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	userID := uuid.New()
	current := &models.User{
		ID:     userID,
		Name:   "Ana Souza",
		Email:  "ana@example.com",
		Active: true,
	}
	newEmail := "taken@example.com"

	mockRepo.On("GetUserByID", mock.Anything, userID).Return(current, nil)
	mockRepo.On("GetUserByEmail", mock.Anything, newEmail).
		Return(&models.User{ID: uuid.New(), Email: newEmail}, nil)

	updated, err := uc.UpdateProfile(context.Background(), userID, &models.UpdateUserRequest{Email: &newEmail})

	assert.Nil(t, updated)
	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 409, ve.Code)
}

func TestDeactivateAccount_AlreadyInactive(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	userID := uuid.New()
	mockRepo.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Active: false}, nil)

	err := uc.DeactivateAccount(context.Background(), userID)

	ve, ok := apperr.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Message, "already deactivated")
}

func TestDeactivateAccount_Success(t *testing.T) {
	mockRepo := new(MockUserRepo)
	mockGW := new(MockUserGW)
	uc := NewUserUC(testConfig(), mockRepo, mockGW)

	userID := uuid.New()
	mockRepo.On("GetUserByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Name: "Ana", Email: "ana@example.com", Active: true}, nil)
	mockRepo.On("SetActive", mock.Anything, userID, false).Return(nil)
	mockGW.On("PublishAccountDeactivated", mock.Anything, mock.Anything).Return(nil)

	err := uc.DeactivateAccount(context.Background(), userID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockGW.AssertExpectations(t)
}
