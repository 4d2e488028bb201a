package order

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	orders map[int]*Order
	nextID int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		orders: make(map[int]*Order),
		nextID: 1,
	}
}

func (m *MockRepository) Create(ctx context.Context, o *Order) error {
	o.ID = m.nextID
	m.nextID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.orders[o.ID] = o
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *MockRepository) ListByBuyer(ctx context.Context, buyerName string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.BuyerName == buyerName {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockRepository) ListIncoming(ctx context.Context) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateOrder_DefaultsBuyerAndStatus(t *testing.T) {
	service := NewService(NewMockRepository())

	o, err := service.CreateOrder(context.Background(), CreateRequest{
		SupplyID:   7,
		QtyOrdered: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Status != StatusPending {
		t.Errorf("expected status pending, got %s", o.Status)
	}
	if o.BuyerName != "SPPG Jakarta Pusat" {
		t.Errorf("expected default buyer, got %s", o.BuyerName)
	}
}

func TestCreateOrder_RejectsMissingSupply(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.CreateOrder(context.Background(), CreateRequest{QtyOrdered: 1})
	if err == nil {
		t.Fatal("expected error for missing supply_id")
	}
}

func TestUpdateStatus_HappyPath(t *testing.T) {
	repo := NewMockRepository()
	service := NewService(repo)

	o, _ := service.CreateOrder(context.Background(), CreateRequest{SupplyID: 1, QtyOrdered: 2})

	confirmed, err := service.UpdateStatus(context.Background(), o.ID, "confirmed")
	if err != nil {
		t.Fatalf("pending -> confirmed failed: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("expected confirmed, got %s", confirmed.Status)
	}

	completed, err := service.UpdateStatus(context.Background(), o.ID, "completed")
	if err != nil {
		t.Fatalf("confirmed -> completed failed: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
}

func TestUpdateStatus_RejectsSkippingConfirmed(t *testing.T) {
	service := NewService(NewMockRepository())

	o, _ := service.CreateOrder(context.Background(), CreateRequest{SupplyID: 1, QtyOrdered: 2})

	_, err := service.UpdateStatus(context.Background(), o.ID, "completed")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatus_RejectsBackwards(t *testing.T) {
	service := NewService(NewMockRepository())

	o, _ := service.CreateOrder(context.Background(), CreateRequest{SupplyID: 1, QtyOrdered: 2})
	if _, err := service.UpdateStatus(context.Background(), o.ID, "confirmed"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := service.UpdateStatus(context.Background(), o.ID, "pending")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	service := NewService(NewMockRepository())

	o, _ := service.CreateOrder(context.Background(), CreateRequest{SupplyID: 1, QtyOrdered: 2})

	_, err := service.UpdateStatus(context.Background(), o.ID, "cancelled")
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.UpdateStatus(context.Background(), 999, "confirmed")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
