package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paypya-resto/config"
	"paypya-resto/models"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) GetAllCategories() ([]models.Category, error) {
	query := `SELECT id, name, slug, icon, description, display_order, created_at, updated_at
	          FROM categories ORDER BY display_order, name`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Icon, &cat.Description,
			&cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CatalogRepository) GetCategoryByID(id string) (*models.Category, error) {
	query := `SELECT id, name, slug, icon, description, display_order, created_at, updated_at
	          FROM categories WHERE id = $1`

	var cat models.Category
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.Icon, &cat.Description,
		&cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CreateCategory(cat *models.Category) error {
	query := `
		INSERT INTO categories (name, slug, icon, description, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		cat.Name, cat.Slug, cat.Icon, cat.Description, cat.DisplayOrder, now, now,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
}

func (r *CatalogRepository) UpdateCategory(cat *models.Category) error {
	query := `UPDATE categories SET name = $1, slug = $2, icon = $3, description = $4,
	          display_order = $5, updated_at = $6 WHERE id = $7`
	_, err := config.DB.Exec(context.Background(), query,
		cat.Name, cat.Slug, cat.Icon, cat.Description, cat.DisplayOrder, time.Now(), cat.ID,
	)
	return err
}

func (r *CatalogRepository) DeleteCategory(id string) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CatalogRepository) GetProducts(filter models.ProductFilter) ([]models.MenuItem, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.CategoryID != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, filter.CategoryID)
		argIndex++
	}
	if filter.IsAvailable != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("is_available = $%d", argIndex))
		args = append(args, *filter.IsAvailable)
		argIndex++
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products" + whereClause
	if err := config.DB.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, category_id, name, description, price, image_url, badge, rating,
	          calories, tags, is_available, created_at, updated_at FROM products` + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.MenuItem{}
	for rows.Next() {
		var p models.MenuItem
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.Badge, &p.Rating, &p.Calories, &p.Tags, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *CatalogRepository) GetProductByID(id string) (*models.MenuItem, error) {
	query := `SELECT id, category_id, name, description, price, image_url, badge, rating,
	          calories, tags, is_available, created_at, updated_at FROM products WHERE id = $1`

	var p models.MenuItem
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Badge, &p.Rating, &p.Calories, &p.Tags, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(p *models.MenuItem) error {
	query := `
		INSERT INTO products (category_id, name, description, price, image_url, badge, rating,
		                      calories, tags, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.Badge, p.Rating,
		p.Calories, p.Tags, p.IsAvailable, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *CatalogRepository) UpdateProduct(p *models.MenuItem) error {
	query := `UPDATE products SET category_id = $1, name = $2, description = $3, price = $4,
	          image_url = $5, badge = $6, rating = $7, calories = $8, tags = $9,
	          is_available = $10, updated_at = $11 WHERE id = $12`
	_, err := config.DB.Exec(context.Background(), query,
		p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.Badge, p.Rating,
		p.Calories, p.Tags, p.IsAvailable, time.Now(), p.ID,
	)
	return err
}

func (r *CatalogRepository) DeleteProduct(id string) error {
	_, err := config.DB.Exec(context.Background(), `UPDATE products SET is_available = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	return err
}
