package service

import (
	"mime/multipart"
	"regexp"
	"time"
	"unicode"

	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/repository"
	"github.com/cinebook/backend/internal/storage"
	"github.com/cinebook/backend/internal/utils"
	"github.com/cinebook/backend/pkg/logger"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	userRepo      *repository.UserRepository
	store         *storage.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, store *storage.Store, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		store:         store,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// SignUp registers a new user with the default role and returns the created
// record together with a fresh session token.
func (s *AuthService) SignUp(name, email, password string) (*models.User, string, error) {
	if err := validateSignUpInput(name, email, password); err != nil {
		logger.Log.Warn("Sign-up validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warn("Sign-up rejected: email already registered",
			zap.String("email", email),
		)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", email),
	)

	return user, token, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: unknown email", zap.String("email", email))
		return "", ErrUserNotFound
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		logger.Log.Warn("Login failed: wrong password",
			zap.String("user_id", user.ID),
		)
		return "", ErrWrongPassword
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return "", err
	}

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return token, nil
}

// UpdateProfileInput carries the optional profile fields; empty strings and a
// nil picture leave the current values untouched.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
	Picture  *multipart.FileHeader
}

// UpdateProfile applies partial updates to a user. A new profile picture is
// written to storage before the record commits, and the previous file is only
// removed after the commit succeeds.
func (s *AuthService) UpdateProfile(userID string, input UpdateProfileInput) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logger.Log.Error("Failed to get user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return ErrProfileNotFound
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		if !emailRegex.MatchString(input.Email) {
			return NewValidationError("invalid email format")
		}
		taken, err := s.userRepo.GetUserByEmail(input.Email)
		if err != nil {
			logger.Log.Error("Failed to check email existence",
				zap.String("email", input.Email),
				zap.Error(err),
			)
			return err
		}
		if taken != nil {
			return ErrEmailAlreadyExists
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		if err := validatePassword(input.Password); err != nil {
			return err
		}
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hashed
	}

	var oldPicture string
	if input.Picture != nil {
		newPath, err := s.store.Save(input.Picture)
		if err != nil {
			return err
		}
		if user.ProfileImage != nil {
			oldPicture = *user.ProfileImage
		}
		user.ProfileImage = &newPath
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		// The record kept its old picture reference, so drop the new file.
		if user.ProfileImage != nil && input.Picture != nil {
			_ = s.store.Remove(*user.ProfileImage)
		}
		return err
	}

	if oldPicture != "" {
		if err := s.store.Remove(oldPicture); err != nil {
			logger.Log.Warn("Failed to remove replaced profile picture",
				zap.String("path", oldPicture),
				zap.Error(err),
			)
		}
	}

	logger.Log.Info("Profile updated", zap.String("user_id", userID))

	return nil
}

func validateSignUpInput(name, email, password string) error {
	if len(name) < 3 || len(name) > 20 {
		return NewValidationError("name must be between 3 and 20 characters")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("invalid email format")
	}
	return validatePassword(password)
}

// validatePassword enforces the password policy: at least 6 characters with
// an uppercase letter, a lowercase letter, a digit and a special character.
func validatePassword(password string) error {
	if len(password) < 6 {
		return NewValidationError("invalid Password")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return NewValidationError("invalid Password")
	}
	return nil
}
