package symbols

import (
	"context"

	"github.com/voclara/voclara/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.UserCategorySymbol, error)
	Add(ctx context.Context, s *models.UserCategorySymbol) (*models.UserCategorySymbol, error)
	Delete(ctx context.Context, userID, categoryName, keyword string) error
}
