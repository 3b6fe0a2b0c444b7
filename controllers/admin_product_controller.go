package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"paypya-resto/models"
	"paypya-resto/repositories"
	"paypya-resto/services"
	"paypya-resto/utils"
)

type AdminProductController struct {
	repo       *repositories.CatalogRepository
	catalog    *services.CatalogService
	cloudinary *models.CloudinaryService
}

func NewAdminProductController(catalog *services.CatalogService) *AdminProductController {
	ctrl := &AdminProductController{
		repo:    repositories.NewCatalogRepository(),
		catalog: catalog,
	}

	cld, err := models.NewCloudinaryService()
	if err != nil {
		log.Printf("Cloudinary not configured, falling back to local uploads: %v", err)
	} else {
		ctrl.cloudinary = cld
	}
	return ctrl
}

// saveImage stores the uploaded file on Cloudinary when configured,
// otherwise on local disk under /uploads/products.
func (ctrl *AdminProductController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if ctrl.cloudinary != nil {
		if err := ctrl.cloudinary.ValidateImageFile(file); err != nil {
			return "", err
		}
		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		url, _, err := ctrl.cloudinary.UploadImage(c.Request.Context(), src, file.Filename, "paypya/products")
		return url, err
	}

	path, err := utils.UploadFile(c, file, "products")
	if err != nil {
		return "", err
	}
	return path, nil
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get all products including unavailable ones, with pagination
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Filter by category ID"
// @Param search query string false "Search by name"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/products [get]
func (ctrl *AdminProductController) GetAllProducts(c *gin.Context) {
	filter := models.ProductFilter{
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := ctrl.catalog.GetProducts(filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	c.JSON(200, resp)
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new menu item
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string true "Description"
// @Param category_id formData string true "Category ID"
// @Param price formData int true "Price in rupiah"
// @Param badge formData string false "Badge label"
// @Param rating formData number false "Rating"
// @Param calories formData int false "Calories"
// @Param is_available formData bool false "Availability"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *AdminProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if _, err := ctrl.repo.GetCategoryByID(req.CategoryID); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	imageURL, err := ctrl.saveImage(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to save image: " + err.Error()})
		return
	}

	product := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		ImageURL:    imageURL,
		Rating:      req.Rating,
		Calories:    req.Calories,
		Tags:        req.Tags,
		IsAvailable: req.IsAvailable,
	}
	if req.Badge != "" {
		product.Badge = &req.Badge
	}

	if err := ctrl.repo.CreateProduct(&product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	ctrl.catalog.InvalidateProductCache()
	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing menu item
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *AdminProductController) UpdateProduct(c *gin.Context) {
	product, err := ctrl.repo.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.CategoryID != "" {
		if _, err := ctrl.repo.GetCategoryByID(req.CategoryID); err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Category not found"})
			return
		}
		product.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Badge != nil {
		if *req.Badge == "" {
			product.Badge = nil
		} else {
			product.Badge = req.Badge
		}
	}
	if req.Rating != nil {
		product.Rating = req.Rating
	}
	if req.Calories != nil {
		product.Calories = req.Calories
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if imageURL, err := ctrl.saveImage(c); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to save image: " + err.Error()})
		return
	} else if imageURL != "" {
		product.ImageURL = imageURL
	}

	if err := ctrl.repo.UpdateProduct(product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	ctrl.catalog.InvalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Mark a menu item unavailable
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *AdminProductController) DeleteProduct(c *gin.Context) {
	if _, err := ctrl.repo.GetProductByID(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := ctrl.repo.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	ctrl.catalog.InvalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}
