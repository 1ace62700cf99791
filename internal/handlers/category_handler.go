package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/models"
)

// CategoryListResponse lists the accepted expense categories
type CategoryListResponse struct {
	Categories []models.ExpenseCategory `json:"categories"`
}

// GetCategories returns the closed set of expense categories
// @Summary     List categories
// @Description Return every accepted expense category in display order.
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoryListResponse "Categories"
// @Router      /categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Categories: models.Categories()})
}
