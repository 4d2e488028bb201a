package order

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateRequest) (*Order, error) {
	if req.SupplyID <= 0 {
		return nil, errors.New("supply_id is required")
	}
	if req.QtyOrdered <= 0 {
		return nil, errors.New("qty_ordered must be positive")
	}

	buyer := req.BuyerName
	if buyer == "" {
		buyer = "SPPG Jakarta Pusat"
	}

	o := &Order{
		SupplyID:   req.SupplyID,
		QtyOrdered: req.QtyOrdered,
		BuyerName:  buyer,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) ListByBuyer(ctx context.Context, buyerName string) ([]*Order, error) {
	if buyerName == "" {
		buyerName = "SPPG Jakarta Pusat"
	}
	return s.repo.ListByBuyer(ctx, buyerName)
}

func (s *Service) ListIncoming(ctx context.Context) ([]*Order, error) {
	return s.repo.ListIncoming(ctx)
}

// UpdateStatus enforces the transition table: only the current status's
// direct successor is accepted.
func (s *Service) UpdateStatus(ctx context.Context, id int, rawStatus string) (*Order, error) {
	next, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	current.Status = next
	return current, nil
}
