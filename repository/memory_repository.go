package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/utils"
)

// MemoryOfferRepository is an in-memory OfferRepository used as a store
// substitute in tests. Unlike the gorm implementation, which leans on the
// database for write serialization, it needs its own mutex.
type MemoryOfferRepository struct {
	mu     sync.RWMutex
	offers map[uint]models.Offer
	nextID uint
	assets *utils.AssetStore

	// Now supplies the clock; override it to pin timestamps in tests.
	Now func() time.Time
}

// NewMemoryOfferRepository constructs an empty in-memory repository.
func NewMemoryOfferRepository(assets *utils.AssetStore) *MemoryOfferRepository {
	return &MemoryOfferRepository{
		offers: make(map[uint]models.Offer),
		nextID: 1,
		assets: assets,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryOfferRepository) List() ([]models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

func (r *MemoryOfferRepository) GetByID(id uint) (*models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	offer, ok := r.offers[id]
	if !ok {
		return nil, utils.NotFoundError("Offer not found.")
	}
	return &offer, nil
}

func (r *MemoryOfferRepository) Create(req models.OfferCreate) (*models.Offer, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.ValidationError("Title is required.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	offer := models.Offer{
		ID:            r.nextID,
		Title:         title,
		Description:   emptyToNil(req.Description),
		IsActive:      req.IsActive,
		StartAt:       utcPtr(req.StartAt),
		EndAt:         utcPtr(req.EndAt),
		ThumbnailPath: emptyToNil(req.ThumbnailPath),
		PdfPath:       emptyToNil(req.PdfPath),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.nextID++
	r.offers[offer.ID] = offer
	return &offer, nil
}

func (r *MemoryOfferRepository) Update(id uint, patch models.OfferPatch) (*models.Offer, error) {
	updates, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	offer, ok := r.offers[id]
	if !ok {
		return nil, utils.NotFoundError("Offer not found.")
	}

	for column, value := range updates {
		switch column {
		case "title":
			offer.Title = value.(string)
		case "is_active":
			offer.IsActive = value.(bool)
		case "description":
			offer.Description = value.(*string)
		case "start_at":
			offer.StartAt = value.(*time.Time)
		case "end_at":
			offer.EndAt = value.(*time.Time)
		case "thumbnail_path":
			offer.ThumbnailPath = value.(*string)
		case "pdf_path":
			offer.PdfPath = value.(*string)
		}
	}
	offer.UpdatedAt = r.Now()

	r.offers[id] = offer
	return &offer, nil
}

func (r *MemoryOfferRepository) Delete(id uint) error {
	r.mu.Lock()
	offer, ok := r.offers[id]
	if ok {
		delete(r.offers, id)
	}
	r.mu.Unlock()

	if !ok {
		return utils.NotFoundError("Offer not found.")
	}
	reclaimAssets(r.assets, offer)
	return nil
}

func (r *MemoryOfferRepository) ListVisible(now time.Time, limit int) ([]models.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var visible []models.Offer
	for _, offer := range r.sorted() {
		if models.Visible(offer, now) {
			visible = append(visible, offer)
			if len(visible) == limit {
				break
			}
		}
	}
	return visible, nil
}

// sorted returns all offers newest-created first. Callers hold the lock.
func (r *MemoryOfferRepository) sorted() []models.Offer {
	offers := make([]models.Offer, 0, len(r.offers))
	for _, offer := range r.offers {
		offers = append(offers, offer)
	}
	sort.Slice(offers, func(i, j int) bool {
		if !offers[i].CreatedAt.Equal(offers[j].CreatedAt) {
			return offers[i].CreatedAt.After(offers[j].CreatedAt)
		}
		return offers[i].ID > offers[j].ID
	})
	return offers
}
