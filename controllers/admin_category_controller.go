package controllers

import (
	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/repositories"
	"paypya-resto/services"
)

type AdminCategoryController struct {
	repo    *repositories.CatalogRepository
	catalog *services.CatalogService
}

func NewAdminCategoryController(catalog *services.CatalogService) *AdminCategoryController {
	return &AdminCategoryController{
		repo:    repositories.NewCatalogRepository(),
		catalog: catalog,
	}
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new menu category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *AdminCategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	category := models.Category{
		Name:         req.Name,
		Slug:         req.Slug,
		Icon:         req.Icon,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if err := ctrl.repo.CreateCategory(&category); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Update an existing menu category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (ctrl *AdminCategoryController) UpdateCategory(c *gin.Context) {
	category, err := ctrl.repo.GetCategoryByID(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := ctrl.repo.UpdateCategory(category); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "data": category})
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Delete a menu category
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *AdminCategoryController) DeleteCategory(c *gin.Context) {
	if _, err := ctrl.repo.GetCategoryByID(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	if err := ctrl.repo.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category. Make sure no products reference it"})
		return
	}

	ctrl.catalog.InvalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}
