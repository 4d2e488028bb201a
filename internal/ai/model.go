package ai

// Nutrition is the macro estimate the model returns for a menu or meal.
type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fats     string `json:"fats"`
}

// MenuRecommendation is one MBG lunch menu proposal.
type MenuRecommendation struct {
	MenuName          string    `json:"menu_name"`
	Description       string    `json:"description"`
	Ingredients       []string  `json:"ingredients"`
	IngredientsNeeded []string  `json:"ingredients_needed"`
	CookingSteps      []string  `json:"cooking_steps"`
	Nutrition         Nutrition `json:"nutrition"`
	Reason            string    `json:"reason"`
}

// ShelfLifeAnalysis is the food-safety estimate for a cooked menu.
type ShelfLifeAnalysis struct {
	RoomTempHours int       `json:"room_temp_hours"`
	FridgeHours   int       `json:"fridge_hours"`
	RiskFactor    string    `json:"risk_factor"`
	StorageTips   string    `json:"storage_tips"`
	Nutrition     Nutrition `json:"nutrition"`
}

// AnalyzedItem is one item the vision model detected in a market photo.
type AnalyzedItem struct {
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	Unit       string `json:"unit"`
	Freshness  string `json:"freshness"`
	ExpiryDays int    `json:"expiry_days"`
	Note       string `json:"visual_reasoning"`
}

// MealScan is the QC verdict for a photo of a finished meal.
type MealScan struct {
	MenuName          string    `json:"menu_name"`
	IsSafe            bool      `json:"is_safe"`
	SpoilageSigns     []string  `json:"spoilage_signs"`
	NutritionEstimate Nutrition `json:"nutrition_estimate"`
	VisualQuality     string    `json:"visual_quality"`
}
