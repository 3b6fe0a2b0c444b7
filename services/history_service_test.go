package services

import (
	"context"
	"testing"

	"paypya-resto/models"
)

func testOrder(number, customer string, total int) models.Order {
	return models.Order{
		OrderNumber:   number,
		CustomerName:  customer,
		TableNumber:   "2",
		Total:         total,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		PaymentMethod: models.PaymentMethodCashier,
	}
}

func TestHistoryListEmpty(t *testing.T) {
	history := NewHistoryService(models.NewMemoryKV())

	got := history.List(context.Background(), "dev-1")

	if len(got) != 0 {
		t.Errorf("List() = %d entries, want 0", len(got))
	}
}

func TestHistoryRecordPrepends(t *testing.T) {
	history := NewHistoryService(models.NewMemoryKV())
	ctx := context.Background()

	history.Record(ctx, "dev-1", testOrder("ORD-01012026-AAAAAA", "Budi", 35000))
	history.Record(ctx, "dev-1", testOrder("ORD-01012026-BBBBBB", "Sari", 18000))
	history.Record(ctx, "dev-1", testOrder("ORD-02012026-CCCCCC", "Budi", 53000))

	got := history.List(ctx, "dev-1")
	if len(got) != 3 {
		t.Fatalf("List() = %d entries, want 3", len(got))
	}

	want := []string{"ORD-02012026-CCCCCC", "ORD-01012026-BBBBBB", "ORD-01012026-AAAAAA"}
	for i, number := range want {
		if got[i].OrderNumber != number {
			t.Errorf("entry %d = %s, want %s (most recent first)", i, got[i].OrderNumber, number)
		}
	}
}

func TestHistoryNeverDeduplicates(t *testing.T) {
	history := NewHistoryService(models.NewMemoryKV())
	ctx := context.Background()

	order := testOrder("ORD-01012026-AAAAAA", "Budi", 35000)
	history.Record(ctx, "dev-1", order)
	history.Record(ctx, "dev-1", order)

	if got := history.List(ctx, "dev-1"); len(got) != 2 {
		t.Errorf("List() = %d entries, want 2 (repeated entries are kept)", len(got))
	}
}

func TestHistoryIsolatedPerDevice(t *testing.T) {
	history := NewHistoryService(models.NewMemoryKV())
	ctx := context.Background()

	history.Record(ctx, "dev-1", testOrder("ORD-01012026-AAAAAA", "Budi", 35000))

	if got := history.List(ctx, "dev-2"); len(got) != 0 {
		t.Errorf("device dev-2 sees %d entries from dev-1, want 0", len(got))
	}
}

func TestHistoryCorruptedStorageDegradesToEmpty(t *testing.T) {
	store := models.NewMemoryKV()
	history := NewHistoryService(store)
	ctx := context.Background()

	store.Set(ctx, "paypya:orders:dev-1", "{not json")

	if got := history.List(ctx, "dev-1"); len(got) != 0 {
		t.Errorf("List() = %d entries for corrupted storage, want 0", len(got))
	}

	// Recording after corruption starts a fresh history.
	history.Record(ctx, "dev-1", testOrder("ORD-01012026-AAAAAA", "Budi", 35000))
	if got := history.List(ctx, "dev-1"); len(got) != 1 {
		t.Errorf("List() = %d entries after re-record, want 1", len(got))
	}
}

func TestHistoryFindByOrderNumber(t *testing.T) {
	history := NewHistoryService(models.NewMemoryKV())
	ctx := context.Background()

	history.Record(ctx, "dev-1", testOrder("ORD-01012026-AAAAAA", "Budi", 35000))
	history.Record(ctx, "dev-1", testOrder("ORD-01012026-BBBBBB", "Sari", 18000))

	order, found := history.FindByOrderNumber(ctx, "dev-1", "ORD-01012026-AAAAAA")
	if !found {
		t.Fatal("FindByOrderNumber() found = false, want true")
	}
	if order.CustomerName != "Budi" {
		t.Errorf("customer = %q, want Budi", order.CustomerName)
	}

	if _, found := history.FindByOrderNumber(ctx, "dev-1", "ORD-99999999-ZZZZZZ"); found {
		t.Error("FindByOrderNumber() found an absent order")
	}
}
