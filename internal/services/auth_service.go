package services

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordSymbols = "!@#$%^&*"

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	mqClient   *rabbitmq.Client // nil disables reset-email events
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		mqClient:   mqClient,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser registers a new account from an email and password. The
// password is checked against the complexity rule before anything is
// stored; the profile document is created with the client role, a username
// derived from the email local part, and empty addresses and wishlist.
func (s *AuthService) RegisterUser(email, password string) (*models.User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return nil, fmt.Errorf("%w: email '%s' already registered", ErrAlreadyExists, email)
	}

	username := strings.SplitN(email, "@", 2)[0]
	if existingUser, err := s.userRepo.GetByUsername(username); err == nil && existingUser != nil {
		// Local-part collisions get a short unique suffix.
		username = username + "-" + uuid.New().String()[:8]
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      models.RoleClient,
		Addresses: []models.Address{},
		Wishlist:  []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// LoginUser authenticates a user by email and returns a JWT token and the
// user if successful.
func (s *AuthService) LoginUser(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email is registered.
		return "", nil, ErrInvalidCredentials
	}

	// Compare the provided password with the hashed password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Generate JWT token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// RequestPasswordReset emits a reset event for the mailer. The generated
// token is single-use material for the email link; nothing about the token
// is stored here.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping reset email publication.")
		return nil
	}
	payload := map[string]interface{}{
		"event":        "user.password_reset_requested",
		"user_id":      user.ID,
		"email":        user.Email,
		"reset_token":  uuid.New().String(),
		"requested_at": time.Now().Format(time.RFC3339),
	}
	if err := s.mqClient.PublishJSON(rabbitmq.EmailEventsQueue, payload); err != nil {
		return fmt.Errorf("failed to publish password reset event for %s: %w", email, err)
	}
	return nil
}

// ChangePassword verifies the current password and replaces it with a new
// one that satisfies the complexity rule.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ValidatePassword enforces the account-store complexity rule: minimum 8
// characters with at least one digit, one lowercase letter, one uppercase
// letter and one symbol from !@#$%^&*.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper || !hasSymbol {
		return fmt.Errorf("%w: password needs a digit, a lowercase letter, an uppercase letter and one of %s", ErrInvalidInput, passwordSymbols)
	}
	return nil
}
