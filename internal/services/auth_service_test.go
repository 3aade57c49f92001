package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	mockRepo.On("GetByEmail", "jane.doe@example.com").Return(nil, repositories.ErrNotFound)
	mockRepo.On("GetByUsername", "jane.doe").Return(nil, repositories.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := service.RegisterUser("jane.doe@example.com", "Sup3rSecret!")

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "jane.doe", user.Username)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotNil(t, user.Addresses)
	assert.Empty(t, user.Addresses)
	assert.NotNil(t, user.Wishlist)
	assert.Empty(t, user.Wishlist)
	// The stored password is a bcrypt hash of the plaintext, not the plaintext.
	assert.NotEqual(t, "Sup3rSecret!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Sup3rSecret!")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserUsernameCollision(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	taken := &models.User{ID: "existing", Username: "jane.doe"}
	mockRepo.On("GetByEmail", "jane.doe@shop.example").Return(nil, repositories.ErrNotFound)
	mockRepo.On("GetByUsername", "jane.doe").Return(taken, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := service.RegisterUser("jane.doe@shop.example", "Sup3rSecret!")

	assert.NoError(t, err)
	// Local part stays as the prefix with a unique suffix appended.
	assert.NotEqual(t, "jane.doe", user.Username)
	assert.Contains(t, user.Username, "jane.doe-")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	existing := &models.User{ID: "u1", Email: "jane.doe@example.com"}
	mockRepo.On("GetByEmail", "jane.doe@example.com").Return(existing, nil)

	_, err := service.RegisterUser("jane.doe@example.com", "Sup3rSecret!")

	assert.ErrorIs(t, err, services.ErrAlreadyExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserWeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "S3cr3t!"},
		{"no digit", "Supersecret!"},
		{"no lowercase", "SUP3RSECRET!"},
		{"no uppercase", "sup3rsecret!"},
		{"no symbol", "Sup3rSecret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.RegisterUser("jane.doe@example.com", tt.password)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
	// Complexity is checked before any repository access.
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	stored := &models.User{
		ID:       "u1",
		Username: "jane.doe",
		Email:    "jane.doe@example.com",
		Password: hashPassword(t, "Sup3rSecret!"),
	}
	mockRepo.On("GetByEmail", "jane.doe@example.com").Return(stored, nil)

	token, user, err := service.LoginUser("jane.doe@example.com", "Sup3rSecret!")

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	// The token round-trips through validation and carries the identity claims.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "jane.doe", claims["username"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUserBadCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	stored := &models.User{
		ID:       "u1",
		Email:    "jane.doe@example.com",
		Password: hashPassword(t, "Sup3rSecret!"),
	}
	mockRepo.On("GetByEmail", "jane.doe@example.com").Return(stored, nil)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound)

	// Wrong password and unknown email produce the same generic error.
	_, _, err := service.LoginUser("jane.doe@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = service.LoginUser("nobody@example.com", "Sup3rSecret!")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	foreignString, err := foreign.SignedString([]byte("other-secret"))
	assert.NoError(t, err)
	_, err = service.ValidateToken(foreignString)
	assert.Error(t, err)

	// An expired token signed with the right secret is rejected too.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	_, err = service.ValidateToken(expiredString)
	assert.Error(t, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	stored := &models.User{
		ID:       "u1",
		Password: hashPassword(t, "Sup3rSecret!"),
	}
	mockRepo.On("GetByID", "u1").Return(stored, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

	err := service.ChangePassword("u1", "Sup3rSecret!", "N3wSecret!pw")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("N3wSecret!pw")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePasswordRejections(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, nil, "test-secret")

	stored := &models.User{
		ID:       "u1",
		Password: hashPassword(t, "Sup3rSecret!"),
	}
	mockRepo.On("GetByID", "u1").Return(stored, nil)
	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound)

	err := service.ChangePassword("u1", "wrong-current", "N3wSecret!pw")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	err = service.ChangePassword("u1", "Sup3rSecret!", "weak")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	err = service.ChangePassword("missing", "Sup3rSecret!", "N3wSecret!pw")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, services.ValidatePassword("Sup3rSecret!"))
	assert.NoError(t, services.ValidatePassword("aB3#aB3#"))
	assert.Error(t, services.ValidatePassword("aB3#aB3"))    // 7 chars
	assert.Error(t, services.ValidatePassword("password1!")) // no uppercase
	assert.Error(t, services.ValidatePassword("Passw0rd?"))  // '?' is not an accepted symbol
}
