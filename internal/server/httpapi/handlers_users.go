package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/services"
)

type updateProfileRequest struct {
	Name            *string        `json:"name"`
	PhoneNumber     *string        `json:"phone_number"`
	Age             *int           `json:"age"`
	Gender          *models.Gender `json:"gender"`
	AvatarURI       *string        `json:"avatar_uri"`
	FavoritePhrases *[]string      `json:"favorite_phrases"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (s *Server) handleGetMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) handleUpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	updated, err := s.users.UpdateProfile(c.Request.Context(), user.ID, &services.ProfileUpdate{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Age:             req.Age,
		Gender:          req.Gender,
		AvatarURI:       req.AvatarURI,
		FavoritePhrases: req.FavoritePhrases,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "profile update failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not update profile.")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	err := s.users.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			abortWithDetail(c, http.StatusBadRequest, "Incorrect current password.")
		case errors.Is(err, common.ErrorValidation):
			abortWithDetail(c, http.StatusUnprocessableEntity, "Invalid new password.")
		default:
			s.logger.Error(c.Request.Context(), "password change failed", "error", err)
			abortWithDetail(c, http.StatusInternalServerError, "Could not change password.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleAvatarUploadURL(c *gin.Context) {
	user := currentUser(c)

	key, url, err := s.avatars.GetUploadURL(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "avatar upload presign failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not create upload URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_uri": key, "upload_url": url})
}

func (s *Server) handleAvatarDownloadURL(c *gin.Context) {
	user := currentUser(c)
	if user.AvatarURI == nil || *user.AvatarURI == "" {
		abortWithDetail(c, http.StatusNotFound, "No avatar set.")
		return
	}

	url, err := s.avatars.GetDownloadURL(c.Request.Context(), *user.AvatarURI)
	if err != nil {
		s.logger.Error(c.Request.Context(), "avatar download presign failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not create download URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}
