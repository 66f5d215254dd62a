package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/services"
)

type registerRequest struct {
	Email       string         `json:"email" binding:"required,email"`
	Name        string         `json:"name" binding:"required"`
	Password    string         `json:"password" binding:"required,min=8"`
	UserType    *string        `json:"user_type"`
	PhoneNumber *string        `json:"phone_number"`
	Age         *int           `json:"age"`
	Gender      *models.Gender `json:"gender"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	params := &services.RegisterParams{
		Email:       req.Email,
		Name:        req.Name,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Age:         req.Age,
		Gender:      req.Gender,
	}
	if req.UserType != nil {
		params.UserType = models.UserType(*req.UserType)
	}

	user, err := s.users.Register(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			abortWithDetail(c, http.StatusBadRequest, "An account with this email already exists.")
		case errors.Is(err, common.ErrorValidation):
			abortWithDetail(c, http.StatusUnprocessableEntity, "Invalid registration data.")
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err)
			abortWithDetail(c, http.StatusInternalServerError, "Could not create account.")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// handleToken implements the password grant: a form-encoded username (the
// email) and password exchanged for a bearer access token.
func (s *Server) handleToken(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		abortUnauthorized(c, "Incorrect email or password")
		return
	}

	token, err := s.users.Login(c.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			abortUnauthorized(c, "Incorrect email or password")
		case errors.Is(err, common.ErrInactiveUser):
			abortWithDetail(c, http.StatusBadRequest, "Inactive user")
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
			abortWithDetail(c, http.StatusInternalServerError, "Could not process login.")
		}
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
