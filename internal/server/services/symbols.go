package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/repositories/repomanager"
)

// TimeContext names a slice of the day used to pick contextual symbols.
type TimeContext string

const (
	ContextMorning   TimeContext = "Morning"
	ContextAfternoon TimeContext = "Afternoon"
	ContextEvening   TimeContext = "Evening"
	ContextNight     TimeContext = "Night"
	ContextDefault   TimeContext = "Default"
)

// SymbolService serves the built-in symbol vocabulary and per-user
// customized categories.
type SymbolService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

func NewSymbolService(db *sql.DB, m repomanager.RepositoryManager) *SymbolService {
	return &SymbolService{db: db, repomanager: m, now: time.Now}
}

// StandardCategories returns the built-in category map. Keys are lowercase
// category names, values are symbol keywords.
func (s *SymbolService) StandardCategories() map[string][]string {
	return standardCategories
}

// CurrentTimeContext buckets the server's local hour:
// 05-11 Morning, 12-16 Afternoon, 17-20 Evening, everything else Night.
func (s *SymbolService) CurrentTimeContext() TimeContext {
	hour := s.now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return ContextMorning
	case hour >= 12 && hour < 17:
		return ContextAfternoon
	case hour >= 17 && hour < 21:
		return ContextEvening
	default:
		return ContextNight
	}
}

// ContextualSymbols returns the keyword list for the given time context,
// falling back to the default list for an unknown context.
func (s *SymbolService) ContextualSymbols(ctx TimeContext) []string {
	if symbols, ok := timeContextSymbols[ctx]; ok {
		return symbols
	}
	return timeContextSymbols[ContextDefault]
}

// CustomizedCategories returns all symbols the user added, grouped by
// category name with keywords sorted within each category.
func (s *SymbolService) CustomizedCategories(ctx context.Context, userID string) (map[string][]*models.UserCategorySymbol, error) {
	repo := s.repomanager.Symbols(s.db)

	symbols, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]*models.UserCategorySymbol{}
	for _, sym := range symbols {
		grouped[sym.CategoryName] = append(grouped[sym.CategoryName], sym)
	}
	for _, list := range grouped {
		sort.Slice(list, func(i, j int) bool { return list[i].Keyword < list[j].Keyword })
	}

	return grouped, nil
}

// AddSymbol adds a keyword to the user's category. Category names are
// normalized to lowercase; a duplicate (user, category, keyword) yields
// common.ErrorAlreadyExists.
func (s *SymbolService) AddSymbol(ctx context.Context, userID, categoryName, keyword string) (*models.UserCategorySymbol, error) {
	categoryName = strings.ToLower(strings.TrimSpace(categoryName))
	keyword = strings.TrimSpace(keyword)
	if categoryName == "" || keyword == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Symbols(s.db)
	return repo.Add(ctx, &models.UserCategorySymbol{
		UserID:       userID,
		CategoryName: categoryName,
		Keyword:      keyword,
	})
}

// RemoveSymbol deletes a keyword from the user's category.
func (s *SymbolService) RemoveSymbol(ctx context.Context, userID, categoryName, keyword string) error {
	categoryName = strings.ToLower(strings.TrimSpace(categoryName))
	keyword = strings.TrimSpace(keyword)

	repo := s.repomanager.Symbols(s.db)
	return repo.Delete(ctx, userID, categoryName, keyword)
}
