package supply

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/geo"

	"github.com/google/uuid"
)

// Uploader is the slice of the storage client the service needs.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo     Repository
	aiClient ai.Client
	uploader Uploader
}

func NewService(repo Repository, aiClient ai.Client, uploader Uploader) *Service {
	return &Service{
		repo:     repo,
		aiClient: aiClient,
		uploader: uploader,
	}
}

// --------------------------------------------------
// Vision preview of a market photo (nothing persisted)
// --------------------------------------------------
func (s *Service) AnalyzeImage(ctx context.Context, image []byte) ([]ai.AnalyzedItem, error) {
	return ai.AnalyzeInventoryImage(ctx, s.aiClient, image)
}

// --------------------------------------------------
// Photo upload (returns public URL)
// --------------------------------------------------
func (s *Service) UploadPhoto(ctx context.Context, filename string, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.New().String()[:8], filename)
	return s.uploader.Upload(ctx, key, body, contentType)
}

// --------------------------------------------------
// Bulk create (vendor upload)
// --------------------------------------------------
func (s *Service) CreateSupplies(ctx context.Context, inputs []SupplyInput) ([]*Supply, error) {
	items := make([]*Supply, 0, len(inputs))

	for _, in := range inputs {
		item := &Supply{
			ItemName:      in.Name,
			Quantity:      in.Qty,
			Unit:          in.Unit,
			QualityStatus: in.Freshness,
			ExpiryDays:    in.ExpiryDays,
			PhotoURL:      in.PhotoURL,
			AINotes:       in.Note,
			OwnerName:     in.OwnerName,
			Location:      in.Location,
			Latitude:      in.Latitude,
			Longitude:     in.Longitude,
		}

		if item.OwnerName == "" {
			item.OwnerName = "Pedagang Pasar"
		}
		if item.Location == "" {
			item.Location = "Pasar Tradisional"
		}

		// Explicit expiry date wins; otherwise derive it from expiry days.
		if in.ExpiryDate != nil && *in.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", *in.ExpiryDate)
			if err != nil {
				return nil, fmt.Errorf("invalid expiry_date %q: %w", *in.ExpiryDate, err)
			}
			item.ExpiryDate = &parsed
		} else if in.ExpiryDays > 0 {
			derived := time.Now().AddDate(0, 0, in.ExpiryDays)
			item.ExpiryDate = &derived
		}

		items = append(items, item)
	}

	if err := s.repo.BulkInsert(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Service) ListSupplies(ctx context.Context) ([]*Supply, error) {
	return s.repo.ListAll(ctx)
}

// ListByOwner powers the vendor's own-stock view.
func (s *Service) ListByOwner(ctx context.Context, ownerName string) ([]*Supply, error) {
	return s.repo.ListByOwner(ctx, ownerName)
}

// --------------------------------------------------
// Supplier search, nearest first
// --------------------------------------------------
func (s *Service) SearchSuppliers(
	ctx context.Context,
	keyword string,
	userLat float64,
	userLong float64,
) ([]*SearchResult, error) {

	items, err := s.repo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, err
	}

	results := make([]*SearchResult, 0, len(items))

	for _, item := range items {
		lat, long := resolveCoordinates(item)
		dist := geo.Haversine(userLat, userLong, lat, long)

		results = append(results, &SearchResult{
			Supply:       *item,
			DistanceKm:   math.Round(dist*10) / 10,
			LocationLat:  lat,
			LocationLong: long,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results, nil
}

// resolveCoordinates prefers real GPS; supplies uploaded without it get a
// stable simulated spot near the Jakarta reference point.
func resolveCoordinates(item *Supply) (float64, float64) {
	if item.HasCoordinates() {
		return *item.Latitude, *item.Longitude
	}
	return geo.JitterAround(geo.MonasLat, geo.MonasLong, item.ID)
}
