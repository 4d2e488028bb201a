package ai

import (
	"context"
	"errors"
	"testing"
)

// --------------------------------------------------
// Mock Client
// --------------------------------------------------

type mockClient struct {
	reply string
	err   error
}

func (m *mockClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	return m.reply, m.err
}

func (m *mockClient) CompleteVision(ctx context.Context, prompt string, image []byte, maxTokens int, temperature float64) (string, error) {
	return m.reply, m.err
}

func (m *mockClient) Chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	return m.reply, m.err
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestRecommendMenu_Success(t *testing.T) {
	client := &mockClient{reply: "```json\n" + `{
		"recommendations": [{
			"menu_name": "Sayur Bayam Tahu",
			"description": "Sederhana dan bergizi",
			"ingredients": ["Bayam", "Tahu"],
			"ingredients_needed": ["Bayam 2 ikat", "Tahu 10 potong"],
			"cooking_steps": ["Rebus bayam", "Goreng tahu"],
			"nutrition": {"calories": "350 kcal", "protein": "15g", "carbs": "40g", "fats": "10g"},
			"reason": "Memakai stok yang ada"
		}]
	}` + "\n```"}

	menu, err := RecommendMenu(context.Background(), client, []string{"Bayam", "Tahu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if menu.MenuName != "Sayur Bayam Tahu" {
		t.Errorf("unexpected menu name: %s", menu.MenuName)
	}
	if len(menu.CookingSteps) != 2 {
		t.Errorf("expected 2 cooking steps, got %d", len(menu.CookingSteps))
	}
}

func TestRecommendMenu_ProviderDown(t *testing.T) {
	client := &mockClient{err: ErrUnavailable}

	_, err := RecommendMenu(context.Background(), client, []string{"Bayam"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRecommendMenu_ProseOnly(t *testing.T) {
	client := &mockClient{reply: "Maaf, coba lagi nanti ya."}

	_, err := RecommendMenu(context.Background(), client, []string{"Bayam"})
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestRecommendMenu_EmptyRecommendations(t *testing.T) {
	client := &mockClient{reply: `{"recommendations": []}`}

	_, err := RecommendMenu(context.Background(), client, nil)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestEstimateShelfLife_Success(t *testing.T) {
	client := &mockClient{reply: `{
		"room_temp_hours": 6,
		"fridge_hours": 24,
		"risk_factor": "Sedang",
		"storage_tips": "Jangan tutup wadah saat panas",
		"nutrition": {"calories": "500 kcal", "protein": "20g", "carbs": "60g", "fats": "15g"}
	}`}

	analysis := EstimateShelfLife(context.Background(), client, "Opor Ayam")

	if analysis.RoomTempHours != 6 || analysis.FridgeHours != 24 {
		t.Errorf("unexpected hours: %d room, %d fridge",
			analysis.RoomTempHours, analysis.FridgeHours)
	}
	if analysis.RiskFactor != "Sedang" {
		t.Errorf("unexpected risk factor: %s", analysis.RiskFactor)
	}
}

func TestEstimateShelfLife_FallbackOnError(t *testing.T) {
	client := &mockClient{err: errors.New("connection refused")}

	analysis := EstimateShelfLife(context.Background(), client, "Opor Ayam")

	if analysis.RoomTempHours != 4 {
		t.Errorf("expected default 4 room hours, got %d", analysis.RoomTempHours)
	}
	if analysis.FridgeHours != 12 {
		t.Errorf("expected default 12 fridge hours, got %d", analysis.FridgeHours)
	}
	if analysis.RiskFactor != "Unknown" {
		t.Errorf("expected Unknown risk, got %s", analysis.RiskFactor)
	}
}

func TestEstimateShelfLife_FallbackOnGarbage(t *testing.T) {
	client := &mockClient{reply: "tidak ada json di sini"}

	analysis := EstimateShelfLife(context.Background(), client, "Soto")

	if analysis.RoomTempHours != 4 || analysis.FridgeHours != 12 {
		t.Errorf("expected defaults, got %d/%d",
			analysis.RoomTempHours, analysis.FridgeHours)
	}
}

func TestAnalyzeInventoryImage_Success(t *testing.T) {
	client := &mockClient{reply: `{
		"items": [
			{"name": "Bawang Merah", "qty": 12, "unit": "Pcs", "freshness": "Sangat Segar", "expiry_days": 14, "visual_reasoning": "Kulit kering mengkilap"}
		]
	}`}

	items, err := AnalyzeInventoryImage(context.Background(), client, []byte{0xFF, 0xD8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Bawang Merah" || items[0].ExpiryDays != 14 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestAnalyzeInventoryImage_EmptyImage(t *testing.T) {
	client := &mockClient{reply: `{"items": []}`}

	_, err := AnalyzeInventoryImage(context.Background(), client, nil)
	if err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestAnalyzeCookedMeal_Unsafe(t *testing.T) {
	client := &mockClient{reply: `{
		"menu_name": "Nasi Kuning",
		"is_safe": false,
		"spoilage_signs": ["berlendir"],
		"nutrition_estimate": {"calories": "600", "protein": "18", "carbs": "80", "fats": "20"},
		"visual_quality": "Mencurigakan"
	}`}

	scan, err := AnalyzeCookedMeal(context.Background(), client, []byte{0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scan.IsSafe {
		t.Error("expected is_safe false")
	}
	if len(scan.SpoilageSigns) != 1 {
		t.Errorf("expected 1 spoilage sign, got %d", len(scan.SpoilageSigns))
	}
}
