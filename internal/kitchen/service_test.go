package kitchen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/supply"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type MockRepository struct {
	consumedIDs  []int
	recordedMeal *MealProduction
	consumeErr   error

	meals []*MealProduction
	stock []StockLine
}

func (m *MockRepository) ConsumeAndRecord(ctx context.Context, ids []int, meal *MealProduction) error {
	if m.consumeErr != nil {
		return m.consumeErr
	}
	m.consumedIDs = ids
	meal.ID = 1
	m.recordedMeal = meal
	return nil
}

func (m *MockRepository) ListMeals(ctx context.Context) ([]*MealProduction, error) {
	return m.meals, nil
}

func (m *MockRepository) MarkServed(ctx context.Context, id int) (*MealProduction, error) {
	for _, meal := range m.meals {
		if meal.ID == id {
			meal.Status = MealServed
			return meal, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockRepository) KitchenStock(ctx context.Context, buyerName string) ([]StockLine, error) {
	return m.stock, nil
}

type mockSupplyRepo struct {
	items []*supply.Supply
}

func (m *mockSupplyRepo) BulkInsert(ctx context.Context, items []*supply.Supply) error { return nil }
func (m *mockSupplyRepo) ListAll(ctx context.Context) ([]*supply.Supply, error) {
	return m.items, nil
}
func (m *mockSupplyRepo) SearchByName(ctx context.Context, keyword string) ([]*supply.Supply, error) {
	return nil, nil
}
func (m *mockSupplyRepo) ListExpiring(ctx context.Context, maxDays int) ([]*supply.Supply, error) {
	return nil, nil
}
func (m *mockSupplyRepo) ListByOwner(ctx context.Context, ownerName string) ([]*supply.Supply, error) {
	return nil, nil
}

type mockAI struct {
	reply string
	err   error

	lastSystem string
}

func (m *mockAI) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	return m.reply, m.err
}

func (m *mockAI) CompleteVision(ctx context.Context, prompt string, image []byte, maxTokens int, temperature float64) (string, error) {
	return m.reply, m.err
}

func (m *mockAI) Chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	m.lastSystem = system
	return m.reply, m.err
}

// --------------------------------------------------
// Cook
// --------------------------------------------------

func TestCookConsumesIngredientsAndRecords(t *testing.T) {
	repo := &MockRepository{}
	client := &mockAI{reply: `{"room_temp_hours": 6, "fridge_hours": 24, "risk_factor": "Rendah", "storage_tips": "Simpan tertutup", "nutrition": {"calories": "450 kkal", "protein": "20g", "notes": "OK"}}`}
	svc := NewService(repo, &mockSupplyRepo{}, client)

	result, err := svc.Cook(context.Background(), CookRequest{
		MenuName:       "Nasi Ayam Teriyaki",
		QtyProduced:    100,
		IngredientsIDs: []int{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Cook returned error: %v", err)
	}

	if len(repo.consumedIDs) != 3 {
		t.Fatalf("expected 3 ingredient ids consumed, got %v", repo.consumedIDs)
	}
	if repo.recordedMeal == nil {
		t.Fatal("expected a production row to be recorded")
	}
	if repo.recordedMeal.Status != MealFresh {
		t.Errorf("new production should be fresh, got %q", repo.recordedMeal.Status)
	}
	if result.Status != "success" {
		t.Errorf("expected success status, got %q", result.Status)
	}
	if !strings.Contains(result.Message, "100 porsi") {
		t.Errorf("message should mention portions, got %q", result.Message)
	}
	if !strings.Contains(repo.recordedMeal.StorageTips, "Tahan 24 jam jika masuk kulkas") {
		t.Errorf("storage tips should carry fridge hours, got %q", repo.recordedMeal.StorageTips)
	}
}

func TestCookSucceedsWhenEstimatorIsDown(t *testing.T) {
	repo := &MockRepository{}
	client := &mockAI{err: ai.ErrUnavailable}
	svc := NewService(repo, &mockSupplyRepo{}, client)

	result, err := svc.Cook(context.Background(), CookRequest{
		MenuName:       "Sayur Lodeh",
		QtyProduced:    50,
		IngredientsIDs: []int{7},
	})
	if err != nil {
		t.Fatalf("Cook must not fail on an estimator outage: %v", err)
	}

	if len(repo.consumedIDs) != 1 {
		t.Fatal("ingredients must still be consumed when the estimator is down")
	}
	if result.SafetyAnalysis.RoomTempHours != 4 || result.SafetyAnalysis.FridgeHours != 12 {
		t.Errorf("expected conservative 4/12 defaults, got %d/%d",
			result.SafetyAnalysis.RoomTempHours, result.SafetyAnalysis.FridgeHours)
	}
}

func TestCookValidatesInput(t *testing.T) {
	svc := NewService(&MockRepository{}, &mockSupplyRepo{}, &mockAI{})

	if _, err := svc.Cook(context.Background(), CookRequest{QtyProduced: 10}); err == nil {
		t.Error("empty menu_name should be rejected")
	}
	if _, err := svc.Cook(context.Background(), CookRequest{MenuName: "Soto", QtyProduced: 0}); err == nil {
		t.Error("zero qty_produced should be rejected")
	}
}

func TestCookPropagatesStorageError(t *testing.T) {
	repo := &MockRepository{consumeErr: errors.New("connection reset")}
	svc := NewService(repo, &mockSupplyRepo{}, &mockAI{err: ai.ErrUnavailable})

	if _, err := svc.Cook(context.Background(), CookRequest{
		MenuName:    "Soto",
		QtyProduced: 10,
	}); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

// --------------------------------------------------
// Serve
// --------------------------------------------------

func TestMarkServedIsIdempotent(t *testing.T) {
	repo := &MockRepository{meals: []*MealProduction{
		{ID: 5, MenuName: "Gado-gado", Status: MealFresh},
	}}
	svc := NewService(repo, &mockSupplyRepo{}, &mockAI{})

	first, err := svc.MarkServed(context.Background(), 5)
	if err != nil {
		t.Fatalf("first serve failed: %v", err)
	}
	if first.Status != MealServed {
		t.Fatalf("expected served status, got %q", first.Status)
	}

	second, err := svc.MarkServed(context.Background(), 5)
	if err != nil {
		t.Fatalf("second serve must be a no-op, got error: %v", err)
	}
	if second.Status != MealServed {
		t.Errorf("expected served status after re-serve, got %q", second.Status)
	}
}

func TestMarkServedUnknownMeal(t *testing.T) {
	svc := NewService(&MockRepository{}, &mockSupplyRepo{}, &mockAI{})

	if _, err := svc.MarkServed(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --------------------------------------------------
// Chef chat
// --------------------------------------------------

func TestChatIncludesStockAndMarketContext(t *testing.T) {
	lat, long := -6.2, 106.8
	repo := &MockRepository{stock: []StockLine{
		{ItemName: "Wortel", Unit: "kg", QualityStatus: "Baik", QtyOrdered: 10},
	}}
	supplyRepo := &mockSupplyRepo{items: []*supply.Supply{
		{ItemName: "Bayam", OwnerName: "Bu Siti", Latitude: &lat, Longitude: &long},
	}}
	client := &mockAI{reply: "Masak sop wortel saja."}
	svc := NewService(repo, supplyRepo, client)

	reply, err := svc.ChatWithChef(context.Background(), ChatRequest{Message: "Menu hari ini apa?"})
	if err != nil {
		t.Fatalf("ChatWithChef failed: %v", err)
	}
	if reply != "Masak sop wortel saja." {
		t.Errorf("unexpected reply: %q", reply)
	}

	if !strings.Contains(client.lastSystem, "Wortel: 10 kg (Kualitas: Baik)") {
		t.Errorf("system prompt missing kitchen stock line:\n%s", client.lastSystem)
	}
	if !strings.Contains(client.lastSystem, "Bayam: Tersedia di Bu Siti") {
		t.Errorf("system prompt missing market line:\n%s", client.lastSystem)
	}
}

func TestChatEmptyWarehouse(t *testing.T) {
	client := &mockAI{reply: "Belanja dulu ya."}
	svc := NewService(&MockRepository{}, &mockSupplyRepo{}, client)

	if _, err := svc.ChatWithChef(context.Background(), ChatRequest{Message: "Ada apa di gudang?"}); err != nil {
		t.Fatalf("ChatWithChef failed: %v", err)
	}

	if !strings.Contains(client.lastSystem, "Gudang Kosong") {
		t.Errorf("empty warehouse marker missing:\n%s", client.lastSystem)
	}
	if !strings.Contains(client.lastSystem, "Pasar sedang kosong") {
		t.Errorf("empty market marker missing:\n%s", client.lastSystem)
	}
}

func TestChatRequiresMessage(t *testing.T) {
	svc := NewService(&MockRepository{}, &mockSupplyRepo{}, &mockAI{})

	if _, err := svc.ChatWithChef(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("empty message should be rejected")
	}
}
