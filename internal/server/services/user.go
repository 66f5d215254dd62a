// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, issuing
// access tokens, and profile maintenance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/auth"
	"github.com/voclara/voclara/internal/server/config"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/repositories/repomanager"
)

// RegisterParams carries the fields accepted at sign-up.
type RegisterParams struct {
	Email       string
	Name        string
	Password    string
	UserType    models.UserType
	PhoneNumber *string
	Age         *int
	Gender      *models.Gender
}

// ProfileUpdate lists the mutable profile fields. Nil means "leave unchanged".
type ProfileUpdate struct {
	Name            *string
	PhoneNumber     *string
	Age             *int
	Gender          *models.Gender
	AvatarURI       *string
	FavoritePhrases *[]string
}

// UserService provides authentication-related operations:
// - Register: create users with a hashed password
// - Login: verify credentials and mint an access token
// - ChangePassword / UpdateProfile: authenticated self-service updates
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      *auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      auth.NewPasswordHasher(cfg.PasswordHashCost),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user account. The password is hashed before anything
// is stored; a duplicate email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, p *RegisterParams) (*models.User, error) {
	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, common.ErrorValidation
	}

	userType := p.UserType
	if userType == "" {
		userType = models.UserTypeParent
	}

	user := &models.User{
		Email:           p.Email,
		Name:            p.Name,
		HashedPassword:  hash,
		PhoneNumber:     p.PhoneNumber,
		UserType:        userType,
		Status:          models.UserStatusActive,
		Age:             p.Age,
		Gender:          p.Gender,
		FavoritePhrases: []string{},
		IsActive:        true,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token. Unknown email and wrong password are indistinguishable to the
// caller; both yield common.ErrorUnauthorized. Inactive accounts are
// reported separately once the credentials check out.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: account lookup: %v", common.ErrorInternal, err)
	}

	ok, err := s.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		return "", fmt.Errorf("%w: password verify: %v", common.ErrorInternal, err)
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	if !user.IsActive || user.Status != models.UserStatusActive {
		return "", common.ErrInactiveUser
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: token signing: %v", common.ErrorInternal, err)
	}
	return token, nil
}

// GetByEmail returns the account for the given email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByEmail(ctx, email)
}

// UpdateProfile applies the non-nil fields of upd to the user's profile and
// returns the updated account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd *ProfileUpdate) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = upd.PhoneNumber
	}
	if upd.Age != nil {
		user.Age = upd.Age
	}
	if upd.Gender != nil {
		user.Gender = upd.Gender
	}
	if upd.AvatarURI != nil {
		user.AvatarURI = upd.AvatarURI
	}
	if upd.FavoritePhrases != nil {
		user.FavoritePhrases = *upd.FavoritePhrases
	}

	return repo.UpdateProfile(ctx, user)
}

// ChangePassword verifies the current password before storing a hash of the
// new one. A wrong current password yields common.ErrorUnauthorized.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(current, user.HashedPassword)
	if err != nil {
		return fmt.Errorf("%w: password verify: %v", common.ErrorInternal, err)
	}
	if !ok {
		return common.ErrorUnauthorized
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return common.ErrorValidation
	}

	return repo.UpdatePassword(ctx, userID, hash)
}
