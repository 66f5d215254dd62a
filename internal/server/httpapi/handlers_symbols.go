package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voclara/voclara/internal/common"
)

type addSymbolRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}

func (s *Server) handleStandardCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.symbols.StandardCategories())
}

func (s *Server) handleContextualSymbols(c *gin.Context) {
	ctx := s.symbols.CurrentTimeContext()
	c.JSON(http.StatusOK, s.symbols.ContextualSymbols(ctx))
}

func (s *Server) handleCustomizedCategories(c *gin.Context) {
	user := currentUser(c)

	grouped, err := s.symbols.CustomizedCategories(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "customized categories read failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not read customized categories.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customized_symbols": grouped})
}

func (s *Server) handleAddSymbol(c *gin.Context) {
	var req addSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user := currentUser(c)
	categoryName := c.Param("category_name")

	sym, err := s.symbols.AddSymbol(c.Request.Context(), user.ID, categoryName, req.Keyword)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			abortWithDetail(c, http.StatusConflict, "You have already added this symbol to the category.")
		case errors.Is(err, common.ErrorValidation):
			abortWithDetail(c, http.StatusUnprocessableEntity, "Category name and keyword must not be blank.")
		default:
			s.logger.Error(c.Request.Context(), "symbol add failed", "error", err)
			abortWithDetail(c, http.StatusInternalServerError, "Could not add symbol.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Symbol added to your category.",
		"category_name": sym.CategoryName,
		"symbol":        sym,
	})
}

func (s *Server) handleRemoveSymbol(c *gin.Context) {
	user := currentUser(c)
	categoryName := c.Param("category_name")
	keyword := c.Param("keyword")

	err := s.symbols.RemoveSymbol(c.Request.Context(), user.ID, categoryName, keyword)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			abortWithDetail(c, http.StatusNotFound, "Symbol not found in this category.")
			return
		}
		s.logger.Error(c.Request.Context(), "symbol delete failed", "error", err)
		abortWithDetail(c, http.StatusInternalServerError, "Could not delete symbol.")
		return
	}

	c.Status(http.StatusNoContent)
}
