package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/auth"
	"github.com/voclara/voclara/internal/server/config"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/repositories/repomanager"
)

// SettingsService serves parental and appearance settings. Reads fall back to
// defaults when a user has never saved settings; defaults are not persisted.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SettingsService {
	return &SettingsService{
		db:          db,
		repomanager: m,
		hasher:      auth.NewPasswordHasher(cfg.PasswordHashCost),
	}
}

// GetParental returns the user's parental settings, or the defaults when none
// are stored.
func (s *SettingsService) GetParental(ctx context.Context, userID string) (*models.ParentalSettings, error) {
	repo := s.repomanager.Settings(s.db)

	settings, err := repo.GetParental(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.DefaultParentalSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateParental stores the provided settings for the user. When passcode is
// non-nil, its hash replaces the stored one; the previous hash is kept
// otherwise so that updating unrelated settings never clears the passcode.
func (s *SettingsService) UpdateParental(ctx context.Context, userID string, settings *models.ParentalSettings, passcode *string) (*models.ParentalSettings, error) {
	repo := s.repomanager.Settings(s.db)

	settings.UserID = userID

	if passcode != nil {
		hash, err := s.hasher.Hash(*passcode)
		if err != nil {
			return nil, common.ErrorValidation
		}
		settings.HashedParentalPasscode = &hash
	} else {
		existing, err := repo.GetParental(ctx, userID)
		if err == nil {
			settings.HashedParentalPasscode = existing.HashedParentalPasscode
		} else if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
	}

	settings.DowntimeDays = sortedUniqueDays(settings.DowntimeDays)
	if settings.NotifyEmails == nil {
		settings.NotifyEmails = []string{}
	}

	return repo.UpsertParental(ctx, settings)
}

// sortedUniqueDays drops unknown and duplicate days and orders the rest
// Mon..Sun. Always returns a non-nil slice.
func sortedUniqueDays(days []models.DayOfWeek) []models.DayOfWeek {
	seen := make(map[models.DayOfWeek]struct{}, len(days))
	out := make([]models.DayOfWeek, 0, len(days))
	for _, d := range days {
		if !models.ValidDay(d) {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return models.DayOrder[out[i]] < models.DayOrder[out[j]]
	})
	return out
}

// VerifyParentalPasscode checks a passcode attempt against the stored hash.
// A user with no stored settings or no passcode set never verifies.
func (s *SettingsService) VerifyParentalPasscode(ctx context.Context, userID, passcode string) (bool, error) {
	repo := s.repomanager.Settings(s.db)

	settings, err := repo.GetParental(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	if settings.HashedParentalPasscode == nil {
		return false, nil
	}

	ok, err := s.hasher.Verify(passcode, *settings.HashedParentalPasscode)
	if err != nil {
		return false, fmt.Errorf("%w: passcode verify: %v", common.ErrorInternal, err)
	}
	return ok, nil
}

// GetAppearance returns the user's appearance settings, or the defaults when
// none are stored.
func (s *SettingsService) GetAppearance(ctx context.Context, userID string) (*models.AppearanceSettings, error) {
	repo := s.repomanager.Settings(s.db)

	settings, err := repo.GetAppearance(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.DefaultAppearanceSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateAppearance stores the provided settings after enforcing the
// contrast/dark-mode consistency rule.
func (s *SettingsService) UpdateAppearance(ctx context.Context, userID string, settings *models.AppearanceSettings) (*models.AppearanceSettings, error) {
	repo := s.repomanager.Settings(s.db)

	settings.UserID = userID
	settings.NormalizeContrast()

	return repo.UpsertAppearance(ctx, settings)
}
