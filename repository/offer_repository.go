package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/utils"
	"gorm.io/gorm"
)

// OfferRepository is the store handle the API surfaces are built against.
// The gorm implementation backs production; an in-memory implementation
// stands in for it in tests.
type OfferRepository interface {
	// List returns all offers, newest-created first.
	List() ([]models.Offer, error)
	// GetByID returns the offer or a NotFoundError.
	GetByID(id uint) (*models.Offer, error)
	// Create validates and persists a new offer, assigning id and timestamps.
	Create(req models.OfferCreate) (*models.Offer, error)
	// Update applies a field-level merge: present fields (including explicit
	// clears) overwrite, omitted fields are untouched.
	Update(id uint, patch models.OfferPatch) (*models.Offer, error)
	// Delete removes the record and best-effort reclaims its asset files.
	Delete(id uint) error
	// ListVisible returns publicly visible offers at the given instant,
	// newest-created first, truncated to limit.
	ListVisible(now time.Time, limit int) ([]models.Offer, error)
}

// patchColumns translates a partial update into column assignments. Only
// fields present in the request appear; a null on a nullable field maps to a
// nil pointer (stored NULL). Title and isActive reject null since neither
// may be cleared.
func patchColumns(patch models.OfferPatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if patch.Title.Set {
		title := strings.TrimSpace(patch.Title.Value)
		if !patch.Title.Valid || title == "" {
			return nil, utils.ValidationError("Title is required.")
		}
		updates["title"] = title
	}
	if patch.IsActive.Set {
		if !patch.IsActive.Valid {
			return nil, utils.ValidationError("isActive cannot be null.")
		}
		updates["is_active"] = patch.IsActive.Value
	}
	if patch.Description.Set {
		updates["description"] = emptyToNil(patch.Description.Ptr())
	}
	if patch.StartAt.Set {
		updates["start_at"] = utcPtr(patch.StartAt.Ptr())
	}
	if patch.EndAt.Set {
		updates["end_at"] = utcPtr(patch.EndAt.Ptr())
	}
	if patch.ThumbnailPath.Set {
		updates["thumbnail_path"] = emptyToNil(patch.ThumbnailPath.Ptr())
	}
	if patch.PdfPath.Set {
		updates["pdf_path"] = emptyToNil(patch.PdfPath.Ptr())
	}

	return updates, nil
}

// emptyToNil normalizes optional strings so that empty means absent.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// utcPtr normalizes an optional instant to UTC.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// GormOfferRepository implements OfferRepository on the database handle.
type GormOfferRepository struct {
	db     *gorm.DB
	assets *utils.AssetStore
	now    func() time.Time
}

// NewGormOfferRepository constructs the production repository. assets may be
// nil when no asset reclamation is wanted.
func NewGormOfferRepository(db *gorm.DB, assets *utils.AssetStore) *GormOfferRepository {
	return &GormOfferRepository{
		db:     db,
		assets: assets,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *GormOfferRepository) List() ([]models.Offer, error) {
	var offers []models.Offer
	if err := r.db.Order("created_at DESC, id DESC").Find(&offers).Error; err != nil {
		return nil, utils.StorageError("Failed to fetch offers", err)
	}
	return offers, nil
}

func (r *GormOfferRepository) GetByID(id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Offer not found.")
		}
		return nil, utils.StorageError("Failed to fetch offer", err)
	}
	return &offer, nil
}

func (r *GormOfferRepository) Create(req models.OfferCreate) (*models.Offer, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.ValidationError("Title is required.")
	}

	now := r.now()
	offer := models.Offer{
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
	if err := r.db.Create(&offer).Error; err != nil {
		return nil, utils.StorageError("Failed to create offer", err)
	}
	return &offer, nil
}

func (r *GormOfferRepository) Update(id uint, patch models.OfferPatch) (*models.Offer, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	updates, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}
	updates["updated_at"] = r.now()

	if err := r.db.Model(&models.Offer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, utils.StorageError("Failed to update offer", err)
	}
	return r.GetByID(id)
}

func (r *GormOfferRepository) Delete(id uint) error {
	offer, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Offer{}, id).Error; err != nil {
		return utils.StorageError("Failed to delete offer", err)
	}
	// Record removal is authoritative; asset cleanup failures are logged
	// and swallowed.
	reclaimAssets(r.assets, *offer)
	return nil
}

func (r *GormOfferRepository) ListVisible(now time.Time, limit int) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.
		Where("is_active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&offers).Error
	if err != nil {
		return nil, utils.StorageError("Failed to fetch offers", err)
	}
	return offers, nil
}

func reclaimAssets(assets *utils.AssetStore, offer models.Offer) {
	if assets == nil {
		return
	}
	for _, p := range offer.AssetPaths() {
		if err := assets.Remove(p); err != nil {
			utils.LogError("Failed to remove asset %s for offer %d: %v", p, offer.ID, err)
		}
	}
}
