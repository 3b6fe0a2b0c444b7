package services

import (
	"context"
	"encoding/json"
	"log"

	"paypya-resto/models"
)

// CartService snapshots each device's cart into the KV store. The cart
// aggregate itself stays pure; this layer owns all I/O.
type CartService struct {
	store models.KVStore
}

func NewCartService(store models.KVStore) *CartService {
	return &CartService{store: store}
}

func cartKey(deviceID string) string {
	return "paypya:cart:" + deviceID
}

// Load returns the device's cart, or an empty cart when the key is
// missing or the stored snapshot cannot be decoded.
func (s *CartService) Load(ctx context.Context, deviceID string) *models.Cart {
	cart := &models.Cart{}

	raw, err := s.store.Get(ctx, cartKey(deviceID))
	if err != nil {
		log.Printf("cart read failed for device %s: %v", deviceID, err)
		return cart
	}
	if raw == "" {
		return cart
	}

	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		log.Printf("cart snapshot corrupted for device %s: %v", deviceID, err)
		return &models.Cart{}
	}
	return cart
}

func (s *CartService) Save(ctx context.Context, deviceID string, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, cartKey(deviceID), string(raw))
}
