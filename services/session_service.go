package services

import (
	"context"
	"encoding/json"
	"log"

	"paypya-resto/models"
)

// DeviceSession carries the remembered customer details for one
// device. TableLocked is set when the table number came from a QR code
// and must not be edited by the customer.
type DeviceSession struct {
	CustomerName string `json:"customer_name,omitempty"`
	TableNumber  string `json:"table_number,omitempty"`
	TableLocked  bool   `json:"table_locked,omitempty"`
}

type SessionService struct {
	store models.KVStore
}

func NewSessionService(store models.KVStore) *SessionService {
	return &SessionService{store: store}
}

func sessionKey(deviceID string) string {
	return "paypya:session:" + deviceID
}

func (s *SessionService) Get(ctx context.Context, deviceID string) DeviceSession {
	var session DeviceSession

	raw, err := s.store.Get(ctx, sessionKey(deviceID))
	if err != nil {
		log.Printf("session read failed for device %s: %v", deviceID, err)
		return session
	}
	if raw == "" {
		return session
	}

	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return DeviceSession{}
	}
	return session
}

func (s *SessionService) Save(ctx context.Context, deviceID string, session DeviceSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionKey(deviceID), string(raw))
}

// LockTable pins the table number scanned from a table QR code.
func (s *SessionService) LockTable(ctx context.Context, deviceID, tableNumber string) error {
	session := s.Get(ctx, deviceID)
	session.TableNumber = tableNumber
	session.TableLocked = true
	return s.Save(ctx, deviceID, session)
}
