package notify

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/geo"
	"github.com/Azekhiel/Bekal-bangsa/internal/supply"
)

// expiryThresholdDays is fixed: rows at 2 days or less are at risk.
const expiryThresholdDays = 2

const kitchenName = "SPPG Jakarta Pusat"

type Service struct {
	supplyRepo supply.Repository
	aiClient   ai.Client
}

func NewService(supplyRepo supply.Repository, aiClient ai.Client) *Service {
	return &Service{supplyRepo: supplyRepo, aiClient: aiClient}
}

// CheckExpiryAndNotify scans the warehouse for near-expiry stock and composes
// the daily advisory feed: one urgent-sale message per vendor, then one
// rescue-recipe message for the kitchen. When nothing is at risk it returns
// no_risk without touching the AI provider.
func (s *Service) CheckExpiryAndNotify(ctx context.Context) (*Result, error) {
	atRisk, err := s.supplyRepo.ListExpiring(ctx, expiryThresholdDays)
	if err != nil {
		return nil, err
	}

	if len(atRisk) == 0 {
		return &Result{
			Status:        "no_risk",
			Messages:      []Notification{},
			ExpiringItems: []*supply.Supply{},
		}, nil
	}

	log.Printf("🔔 %d stok kritis ditemukan, menyusun notifikasi...", len(atRisk))

	byOwner := make(map[string][]*supply.Supply)
	for _, item := range atRisk {
		byOwner[item.OwnerName] = append(byOwner[item.OwnerName], item)
	}

	owners := make([]string, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	messages := make([]Notification, 0, len(owners)+1)
	for _, owner := range owners {
		messages = append(messages, vendorWarning(owner, byOwner[owner]))
	}

	menu, rescueText := s.rescueRecipe(ctx, atRisk)

	messages = append(messages, Notification{
		To:      kitchenName,
		Role:    "SPPG",
		Type:    TypeRescueRecipe,
		Message: rescueText,
	})

	return &Result{
		Status:        "success",
		Messages:      messages,
		ExpiringItems: atRisk,
		RescueMenu:    menu,
	}, nil
}

// vendorWarning names every at-risk item the vendor owns. A vendor with a
// real GPS fix gets the distance to the kitchen embedded in the call to
// action; everyone else gets the generic nearest-hub sentence.
func vendorWarning(owner string, items []*supply.Supply) Notification {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%s (%d %s, sisa %d hari)",
			item.ItemName, item.Quantity, item.Unit, item.ExpiryDays))
	}

	action := "Segera tawarkan ke SPPG terdekat sebelum membusuk!"
	for _, item := range items {
		if item.HasCoordinates() {
			dist := geo.Haversine(*item.Latitude, *item.Longitude, geo.MonasLat, geo.MonasLong)
			action = fmt.Sprintf("%s hanya %.1f km dari lokasimu — jual sekarang sebelum membusuk!",
				kitchenName, dist)
			break
		}
	}

	return Notification{
		To:   owner,
		Role: "VENDOR",
		Type: TypeUrgentSale,
		Message: fmt.Sprintf("⚠️ Halo %s! Stok kamu hampir kadaluarsa: %s. %s",
			owner, strings.Join(names, ", "), action),
	}
}

// rescueRecipe makes the single AI call of the notifier. A provider failure
// degrades to placeholder text inside the kitchen message; the daily check
// as a whole still succeeds.
func (s *Service) rescueRecipe(ctx context.Context, atRisk []*supply.Supply) (*ai.MenuRecommendation, string) {
	seen := make(map[string]bool)
	var ingredients []string
	for _, item := range atRisk {
		if !seen[item.ItemName] {
			seen[item.ItemName] = true
			ingredients = append(ingredients, item.ItemName)
		}
	}

	menu, err := ai.RecommendMenu(ctx, s.aiClient, ingredients)
	if err != nil {
		log.Printf("rescue recipe failed: %v", err)
		return nil, fmt.Sprintf(
			"🍳 RESEP PENYELAMAT: bahan hampir kadaluarsa hari ini: %s. "+
				"(Resep AI tidak tersedia: %v)",
			strings.Join(ingredients, ", "), err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍳 RESEP PENYELAMAT: %s\n%s\n\n", menu.MenuName, menu.Description)

	if len(menu.IngredientsNeeded) > 0 {
		b.WriteString("🛒 Belanja:\n")
		for _, ing := range menu.IngredientsNeeded {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n")
	}

	if len(menu.CookingSteps) > 0 {
		b.WriteString("👨‍🍳 Langkah:\n")
		for i, step := range menu.CookingSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "📊 Gizi: %s kalori, %s protein",
		menu.Nutrition.Calories, menu.Nutrition.Protein)

	return menu, b.String()
}
