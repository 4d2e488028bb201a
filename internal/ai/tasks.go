package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// RecommendMenu asks for one MBG lunch menu built from the given stock.
// Empty ingredient lists are passed through untouched; the model copes.
func RecommendMenu(
	ctx context.Context,
	client Client,
	ingredients []string,
) (*MenuRecommendation, error) {

	prompt := BuildMenuRecommendationPrompt(ingredients)

	raw, err := client.Complete(ctx, prompt, 1500, 1.0)
	if err != nil {
		return nil, err
	}

	extracted, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []MenuRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: no recommendations in output", ErrInvalidJSON)
	}

	return &parsed.Recommendations[0], nil
}

// EstimateShelfLife never fails: any AI problem falls back to a conservative
// default so cooking is never blocked by the provider.
func EstimateShelfLife(ctx context.Context, client Client, menuName string) *ShelfLifeAnalysis {
	prompt := BuildShelfLifePrompt(menuName)

	raw, err := client.Complete(ctx, prompt, 300, 0.2)
	if err != nil {
		log.Printf("shelf-life estimate failed for %q: %v (using defaults)", menuName, err)
		return DefaultShelfLife()
	}

	extracted, err := ExtractJSON(raw)
	if err != nil {
		log.Printf("shelf-life extraction failed for %q: %v (using defaults)", menuName, err)
		return DefaultShelfLife()
	}

	var analysis ShelfLifeAnalysis
	if err := json.Unmarshal([]byte(extracted), &analysis); err != nil {
		log.Printf("shelf-life parse failed for %q: %v (using defaults)", menuName, err)
		return DefaultShelfLife()
	}

	if analysis.RoomTempHours <= 0 {
		analysis.RoomTempHours = 4
	}
	if analysis.FridgeHours <= 0 {
		analysis.FridgeHours = 12
	}

	return &analysis
}

// DefaultShelfLife is the conservative fallback when the estimator is down.
func DefaultShelfLife() *ShelfLifeAnalysis {
	return &ShelfLifeAnalysis{
		RoomTempHours: 4,
		FridgeHours:   12,
		RiskFactor:    "Unknown",
		StorageTips:   "Segera konsumsi. Simpan di tempat sejuk dan tertutup.",
		Nutrition: Nutrition{
			Calories: "N/A",
			Protein:  "N/A",
			Carbs:    "N/A",
			Fats:     "N/A",
		},
	}
}

// AnalyzeInventoryImage runs the vision model over a market stock photo.
// Low temperature so the model counts instead of inventing.
func AnalyzeInventoryImage(ctx context.Context, client Client, image []byte) ([]AnalyzedItem, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}

	prompt := BuildInventoryAnalysisPrompt()

	raw, err := client.CompleteVision(ctx, prompt, image, 1000, 0.1)
	if err != nil {
		return nil, err
	}

	extracted, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Items []AnalyzedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return parsed.Items, nil
}

// AnalyzeCookedMeal runs the QC scan over a finished-meal photo.
func AnalyzeCookedMeal(ctx context.Context, client Client, image []byte) (*MealScan, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}

	prompt := BuildCookedMealAnalysisPrompt()

	raw, err := client.CompleteVision(ctx, prompt, image, 600, 0.2)
	if err != nil {
		return nil, err
	}

	extracted, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var scan MealScan
	if err := json.Unmarshal([]byte(extracted), &scan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return &scan, nil
}
