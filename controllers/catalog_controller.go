package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary Get all categories
// @Description Get the menu categories in display order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.catalog.GetAllCategories()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get products
// @Description Get paginated menu items, filterable by category and search query
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param category_id query string false "Filter by category"
// @Param search query string false "Search name and description"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	available := true
	filter := models.ProductFilter{
		CategoryID:  c.Query("category_id"),
		Search:      c.Query("search"),
		IsAvailable: &available,
		Page:        page,
		Limit:       limit,
	}

	resp, err := ctrl.catalog.GetProducts(filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	c.JSON(200, resp)
}

// @Summary Get product by ID
// @Description Get a single menu item
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}
