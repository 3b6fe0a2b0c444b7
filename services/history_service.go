package services

import (
	"context"
	"encoding/json"
	"log"

	"paypya-resto/models"
)

// HistoryService keeps a device-local, most-recent-first list of placed
// orders so a customer can revisit receipts without authentication.
// It is independent of the authoritative orders table.
type HistoryService struct {
	store models.KVStore
}

func NewHistoryService(store models.KVStore) *HistoryService {
	return &HistoryService{store: store}
}

func historyKey(deviceID string) string {
	return "paypya:orders:" + deviceID
}

// Record prepends the order to the device's history. Entries are never
// merged or deduplicated, even for a repeated order number.
func (s *HistoryService) Record(ctx context.Context, deviceID string, order models.Order) error {
	orders := s.List(ctx, deviceID)
	orders = append([]models.Order{order}, orders...)

	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, historyKey(deviceID), string(raw))
}

// List returns the stored history, most recent first. A missing key,
// a read failure or corrupted storage all degrade to an empty list.
func (s *HistoryService) List(ctx context.Context, deviceID string) []models.Order {
	raw, err := s.store.Get(ctx, historyKey(deviceID))
	if err != nil {
		log.Printf("order history read failed for device %s: %v", deviceID, err)
		return []models.Order{}
	}
	if raw == "" {
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("order history corrupted for device %s: %v", deviceID, err)
		return []models.Order{}
	}
	return orders
}

// FindByOrderNumber scans the history and returns the first match.
func (s *HistoryService) FindByOrderNumber(ctx context.Context, deviceID, orderNumber string) (*models.Order, bool) {
	for _, order := range s.List(ctx, deviceID) {
		if order.OrderNumber == orderNumber {
			return &order, true
		}
	}
	return nil, false
}
