package settings

import (
	"context"

	"github.com/voclara/voclara/internal/server/models"
)

type Repository interface {
	GetParental(ctx context.Context, userID string) (*models.ParentalSettings, error)
	UpsertParental(ctx context.Context, s *models.ParentalSettings) (*models.ParentalSettings, error)
	GetAppearance(ctx context.Context, userID string) (*models.AppearanceSettings, error)
	UpsertAppearance(ctx context.Context, s *models.AppearanceSettings) (*models.AppearanceSettings, error)
}
