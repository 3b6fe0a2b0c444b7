package services

import (
	"context"
	"testing"

	"paypya-resto/models"
)

func TestSessionRoundTrip(t *testing.T) {
	sessions := NewSessionService(models.NewMemoryKV())
	ctx := context.Background()

	if got := sessions.Get(ctx, "dev-1"); got != (DeviceSession{}) {
		t.Errorf("Get() on fresh device = %+v, want zero session", got)
	}

	want := DeviceSession{CustomerName: "Budi", TableNumber: "4"}
	if err := sessions.Save(ctx, "dev-1", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got := sessions.Get(ctx, "dev-1"); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestLockTable(t *testing.T) {
	sessions := NewSessionService(models.NewMemoryKV())
	ctx := context.Background()

	sessions.Save(ctx, "dev-1", DeviceSession{CustomerName: "Budi", TableNumber: "2"})

	if err := sessions.LockTable(ctx, "dev-1", "12"); err != nil {
		t.Fatalf("LockTable() error = %v", err)
	}

	got := sessions.Get(ctx, "dev-1")
	if got.TableNumber != "12" {
		t.Errorf("table = %q, want QR table 12", got.TableNumber)
	}
	if !got.TableLocked {
		t.Error("TableLocked = false after LockTable")
	}
	if got.CustomerName != "Budi" {
		t.Errorf("customer = %q, locking must keep other fields", got.CustomerName)
	}
}

func TestSessionCorruptedStorageDegradesToZero(t *testing.T) {
	store := models.NewMemoryKV()
	sessions := NewSessionService(store)
	ctx := context.Background()

	store.Set(ctx, "paypya:session:dev-1", "][")

	if got := sessions.Get(ctx, "dev-1"); got != (DeviceSession{}) {
		t.Errorf("Get() = %+v for corrupted storage, want zero session", got)
	}
}
