package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/auth"
	"github.com/voclara/voclara/internal/server/models"
)

// currentUserKey is the gin context key holding the authenticated *models.User.
const currentUserKey = "current_user"

const credentialsDetail = "Could not validate credentials"

func abortWithDetail(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": detail})
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithDetail(c, http.StatusUnauthorized, detail)
}

// bearerToken extracts the token from an Authorization header value. A
// missing header or a non-bearer scheme yields common.ErrMissingCredentials.
func bearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrMissingCredentials
	}
	return strings.TrimPrefix(header, common.BearerPrefix), nil
}

// authMiddleware is the gate in front of every protected route. Token
// failures are logged with their specific kind, but every rejection looks the
// same to the client: a token for a deleted account is indistinguishable from
// a forged one.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			s.logger.Debug(c.Request.Context(), "rejected request without credentials", "error", err)
			abortUnauthorized(c, "Not authenticated")
			return
		}

		email, err := auth.GetSubjectFromToken(token, []byte(s.cfg.SecretKey))
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				s.logger.Debug(c.Request.Context(), "rejected expired token")
			case errors.Is(err, common.ErrSignatureInvalid):
				s.logger.Warn(c.Request.Context(), "rejected token with invalid signature")
			default:
				s.logger.Debug(c.Request.Context(), "rejected malformed token")
			}
			abortUnauthorized(c, credentialsDetail)
			return
		}

		user, err := s.users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if !errors.Is(err, common.ErrorNotFound) {
				s.logger.Error(c.Request.Context(), "user lookup failed during auth", "error", err)
			}
			abortUnauthorized(c, credentialsDetail)
			return
		}

		if !user.IsActive || user.Status != models.UserStatusActive {
			abortWithDetail(c, http.StatusBadRequest, "Inactive user")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the user placed in the context by authMiddleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}

// corsMiddleware applies the configured allowed origin to every response and
// short-circuits preflight requests.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := s.cfg.CORSAllowedOrigin
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
