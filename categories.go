package main

import (
	"net/http"
	"strings"

	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Category handler functions

// @Summary Get all categories
// @Description Retrieve all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} Category "List of categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	dbCategories, err := queries.GetCategories(c.Request.Context())
	if err != nil {
		logging.L().Error("fetching categories", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	categories := make([]Category, 0, len(dbCategories))
	for _, dbCategory := range dbCategories {
		categories = append(categories, convertCategory(dbCategory))
	}

	c.JSON(http.StatusOK, categories)
}

// bindCategory reads and validates a category body
func bindCategory(c *gin.Context) (CategoryRequest, bool) {
	var request CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return request, false
	}

	request.Name = strings.TrimSpace(request.Name)
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, false
	}
	if err := validateType(request.Type); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, false
	}
	if err := validateHexColor(request.Color); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, false
	}
	if request.Color == "" {
		request.Color = defaultColor
	}
	return request, true
}

// @Summary Create category
// @Description Create a new category. Color defaults to #6B7280.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category data (name and type required, color optional)"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	request, ok := bindCategory(c)
	if !ok {
		return
	}

	dbCategory, err := queries.CreateCategory(c.Request.Context(), generated.CreateCategoryParams{
		Name:  request.Name,
		Type:  request.Type,
		Color: request.Color,
	})
	if err != nil {
		logging.L().Error("creating category", zap.String("name", request.Name), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertCategory(dbCategory))
}

// @Summary Update category
// @Description Update an existing category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Updated category data"
// @Success 200 {object} Category "Updated category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [put]
func updateCategory(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	request, ok := bindCategory(c)
	if !ok {
		return
	}

	dbCategory, err := queries.UpdateCategory(c.Request.Context(), generated.UpdateCategoryParams{
		ID:    id,
		Name:  request.Name,
		Type:  request.Type,
		Color: request.Color,
	})
	if err != nil {
		logging.L().Error("updating category", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertCategory(dbCategory))
}

// @Summary Delete category
// @Description Delete a category. Its transactions become uncategorized.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [delete]
func deleteCategory(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	deleted, err := queries.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		logging.L().Error("deleting category", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
