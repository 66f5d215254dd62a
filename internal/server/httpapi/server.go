// Package httpapi exposes the HTTP/JSON API: public auth endpoints and the
// bearer-token-protected user, settings, and symbols surfaces.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/logging"
	"github.com/voclara/voclara/internal/server/config"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/services"
)

// UserProvider is the slice of UserService the handlers need.
type UserProvider interface {
	Register(ctx context.Context, p *services.RegisterParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd *services.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// SettingsProvider is the slice of SettingsService the handlers need.
type SettingsProvider interface {
	GetParental(ctx context.Context, userID string) (*models.ParentalSettings, error)
	UpdateParental(ctx context.Context, userID string, s *models.ParentalSettings, passcode *string) (*models.ParentalSettings, error)
	VerifyParentalPasscode(ctx context.Context, userID, passcode string) (bool, error)
	GetAppearance(ctx context.Context, userID string) (*models.AppearanceSettings, error)
	UpdateAppearance(ctx context.Context, userID string, s *models.AppearanceSettings) (*models.AppearanceSettings, error)
}

// SymbolProvider is the slice of SymbolService the handlers need.
type SymbolProvider interface {
	StandardCategories() map[string][]string
	CurrentTimeContext() services.TimeContext
	ContextualSymbols(ctx services.TimeContext) []string
	CustomizedCategories(ctx context.Context, userID string) (map[string][]*models.UserCategorySymbol, error)
	AddSymbol(ctx context.Context, userID, categoryName, keyword string) (*models.UserCategorySymbol, error)
	RemoveSymbol(ctx context.Context, userID, categoryName, keyword string) error
}

// AvatarProvider hands out presigned URLs for avatar storage.
type AvatarProvider interface {
	GetUploadURL(ctx context.Context, userID string) (string, string, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
}

// Server hosts the HTTP API.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	users    UserProvider
	settings SettingsProvider
	symbols  SymbolProvider
	avatars  AvatarProvider
}

func NewServer(cfg *config.Config, logger logging.Logger,
	users UserProvider, settings SettingsProvider, symbols SymbolProvider, avatars AvatarProvider) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger.With("module", "httpapi"),
		users:    users,
		settings: settings,
		symbols:  symbols,
		avatars:  avatars,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.corsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Voclara API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", s.handleRegister)
		authRoutes.POST("/token", s.handleToken)
	}

	protected := v1.Group("")
	protected.Use(s.authMiddleware())
	{
		userRoutes := protected.Group("/users")
		{
			userRoutes.GET("/me", s.handleGetMe)
			userRoutes.PATCH("/me", s.handleUpdateMe)
			userRoutes.PUT("/me/password", s.handleChangePassword)
			userRoutes.POST("/me/avatar/upload-url", s.handleAvatarUploadURL)
			userRoutes.GET("/me/avatar/download-url", s.handleAvatarDownloadURL)
		}

		settingsRoutes := protected.Group("/settings")
		{
			settingsRoutes.GET("/parental", s.handleGetParental)
			settingsRoutes.PUT("/parental", s.handleUpdateParental)
			settingsRoutes.POST("/parental/passcode/verify", s.handleVerifyPasscode)
			settingsRoutes.GET("/appearance", s.handleGetAppearance)
			settingsRoutes.PUT("/appearance", s.handleUpdateAppearance)
		}

		symbolRoutes := protected.Group("/symbols")
		{
			symbolRoutes.GET("/standard-categories", s.handleStandardCategories)
			symbolRoutes.GET("/current-time-context", s.handleContextualSymbols)
			symbolRoutes.GET("/customized-categories", s.handleCustomizedCategories)
			symbolRoutes.POST("/customized-categories/:category_name/symbols", s.handleAddSymbol)
			symbolRoutes.DELETE("/customized-categories/:category_name/symbols/:keyword", s.handleRemoveSymbol)
		}
	}

	return r
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.EndpointAddr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.cfg.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
