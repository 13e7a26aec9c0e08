package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"alumni-portal/internal/status"
	"alumni-portal/models"
	"alumni-portal/storage"
	"alumni-portal/utils"
)

// sessionTokenBytes gives a 32-char hex token.
const sessionTokenBytes = 16

type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     string
	Profile  *models.Profile
}

// AuthService replaces the old hardcoded user list with a user repository
// behind an interface. Tokens are opaque codes, not real sessions.
type AuthService struct {
	users storage.UserStore
	now   func() time.Time
}

func NewAuthService(users storage.UserStore) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Name == "" || in.Password == "" {
		return nil, status.ErrMissingFields
	}
	role := models.Role(in.Role)
	if in.Role == "" {
		role = models.RoleAlumni
	}
	if !role.Valid() {
		return nil, fmt.Errorf("auth: unknown role %q", in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        in.Email,
		Name:         in.Name,
		Role:         role,
		PasswordHash: string(hash),
		Profile:      in.Profile,
		CreatedAt:    s.now(),
	}
	if err := s.users.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, status.ErrEmailTaken) {
			return nil, status.ErrEmailTaken
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and returns the user with an opaque session
// token. Unknown email and wrong password are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, status.ErrNotFound) {
		return nil, "", status.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", status.ErrInvalidCredentials
	}

	token, err := utils.GenerateCode(sessionTokenBytes)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}
