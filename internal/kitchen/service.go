package kitchen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/geo"
	"github.com/Azekhiel/Bekal-bangsa/internal/supply"
)

type Service struct {
	repo       Repository
	supplyRepo supply.Repository
	aiClient   ai.Client
}

func NewService(repo Repository, supplyRepo supply.Repository, aiClient ai.Client) *Service {
	return &Service{
		repo:       repo,
		supplyRepo: supplyRepo,
		aiClient:   aiClient,
	}
}

// --------------------------------------------------
// Cook: consume ingredients, record production
// --------------------------------------------------
// The shelf-life estimate runs BEFORE the transaction so the estimate's
// round trip never holds database locks; an estimator failure falls back to
// the conservative default and the cook still succeeds.
func (s *Service) Cook(ctx context.Context, req CookRequest) (*CookResult, error) {
	if req.MenuName == "" {
		return nil, errors.New("menu_name is required")
	}
	if req.QtyProduced <= 0 {
		return nil, errors.New("qty_produced must be positive")
	}

	log.Printf("🍳 Memasak %s (%d porsi)...", req.MenuName, req.QtyProduced)

	analysis := ai.EstimateShelfLife(ctx, s.aiClient, req.MenuName)

	tips := fmt.Sprintf("%s (Tahan %d jam jika masuk kulkas)",
		analysis.StorageTips, analysis.FridgeHours)

	meal := &MealProduction{
		MenuName:       req.MenuName,
		QtyProduced:    req.QtyProduced,
		ExpiryDatetime: time.Now().Add(time.Duration(analysis.RoomTempHours) * time.Hour),
		Status:         MealFresh,
		StorageTips:    tips,
	}

	if err := s.repo.ConsumeAndRecord(ctx, req.IngredientsIDs, meal); err != nil {
		return nil, fmt.Errorf("gagal update stok: %w", err)
	}

	return &CookResult{
		Status:            "success",
		Message:           fmt.Sprintf("Berhasil memproduksi %d porsi %s", req.QtyProduced, req.MenuName),
		NutritionEstimate: analysis.Nutrition,
		SafetyAnalysis:    analysis,
		Production:        meal,
	}, nil
}

func (s *Service) ListMeals(ctx context.Context) ([]*MealProduction, error) {
	return s.repo.ListMeals(ctx)
}

func (s *Service) MarkServed(ctx context.Context, id int) (*MealProduction, error) {
	return s.repo.MarkServed(ctx, id)
}

// RecommendMenu asks the AI chef for one MBG menu from the given stock.
func (s *Service) RecommendMenu(ctx context.Context, ingredients []string) (*ai.MenuRecommendation, error) {
	return ai.RecommendMenu(ctx, s.aiClient, ingredients)
}

// --------------------------------------------------
// QC scan of a finished meal photo
// --------------------------------------------------
func (s *Service) ScanFood(ctx context.Context, image []byte) (*ai.MealScan, error) {
	return ai.AnalyzeCookedMeal(ctx, s.aiClient, image)
}

// --------------------------------------------------
// Chef chatbot
// --------------------------------------------------
func (s *Service) ChatWithChef(ctx context.Context, req ChatRequest) (string, error) {
	if req.Message == "" {
		return "", errors.New("message is required")
	}

	buyer := req.BuyerName
	if buyer == "" {
		buyer = "SPPG Jakarta Pusat"
	}

	kitchenLat := geo.MonasLat
	kitchenLong := geo.MonasLong
	if req.Latitude != nil && req.Longitude != nil {
		kitchenLat = *req.Latitude
		kitchenLong = *req.Longitude
	}

	stock, err := s.repo.KitchenStock(ctx, buyer)
	if err != nil {
		return "", err
	}

	var stockLines []string
	for _, l := range stock {
		stockLines = append(stockLines, l.String())
	}
	stockText := "- Tidak ada stok (Gudang Kosong)"
	if len(stockLines) > 0 {
		stockText = strings.Join(stockLines, "\n")
	}

	market, err := s.supplyRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	var marketLines []string
	for _, item := range market {
		dist := 0.0
		if item.HasCoordinates() {
			dist = geo.Haversine(kitchenLat, kitchenLong, *item.Latitude, *item.Longitude)
		}
		marketLines = append(marketLines, fmt.Sprintf(
			"- %s: Tersedia di %s (Jarak: %.1f km)",
			item.ItemName, item.OwnerName, dist,
		))
	}
	marketText := "- Pasar sedang kosong"
	if len(marketLines) > 0 {
		marketText = strings.Join(marketLines, "\n")
	}

	system := ai.BuildChefSystemPrompt(stockText, marketText)

	return s.aiClient.Chat(ctx, system, req.Message, 1500)
}
