package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paypya-resto/config"
	"paypya-resto/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder persists the order header and all line items inside one
// transaction, so a line-item failure never leaves an orphaned header.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, customer_name, table_number, total, status,
		                     payment_status, payment_method, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.CustomerName, order.TableNumber, order.Total,
		order.Status, order.PaymentStatus, order.PaymentMethod, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, name, description, image_url,
			                          quantity, price_at_time, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Description, item.ImageURL,
			item.Quantity, item.PriceAtTime, now,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindAll(page, limit int, status, search string) ([]models.Order, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("order_number ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, order_number, customer_name, table_number, total, status,
	          payment_status, payment_method, created_at, updated_at FROM orders` + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.TableNumber, &o.Total,
			&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, order_number, customer_name, table_number, total, status,
		 payment_status, payment_method, created_at, updated_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.TableNumber, &o.Total,
		&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, order_id, product_id, name, description, image_url, quantity, price_at_time
		 FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderLine
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Description, &item.ImageURL, &item.Quantity, &item.PriceAtTime); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

// UpdateStatus enforces the fulfillment state machine: the row is
// locked, the transition validated, then the new status written.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, next models.OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current models.OrderStatus
	if err := tx.QueryRow(ctx,
		"SELECT status FROM orders WHERE id = $1 FOR UPDATE", id).Scan(&current); err != nil {
		return ErrOrderNotFound
	}

	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if _, err := tx.Exec(ctx,
		"UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3",
		next, time.Now(), id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, next models.PaymentStatus) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current models.PaymentStatus
	if err := tx.QueryRow(ctx,
		"SELECT payment_status FROM orders WHERE id = $1 FOR UPDATE", id).Scan(&current); err != nil {
		return ErrOrderNotFound
	}

	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	if _, err := tx.Exec(ctx,
		"UPDATE orders SET payment_status = $1, updated_at = $2 WHERE id = $3",
		next, time.Now(), id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit(ctx)
}

type OrderStats struct {
	TotalRevenue int            `json:"total_revenue"`
	TotalOrders  int            `json:"total_orders"`
	ByStatus     map[string]int `json:"by_status"`
}

func (r *OrderRepository) GetStats() (*OrderStats, error) {
	stats := &OrderStats{ByStatus: map[string]int{}}

	rows, err := config.DB.Query(context.Background(),
		"SELECT status, COUNT(*), COALESCE(SUM(total), 0) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count, revenue int
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.TotalOrders += count
		if status != string(models.OrderStatusCancelled) {
			stats.TotalRevenue += revenue
		}
	}
	return stats, rows.Err()
}
