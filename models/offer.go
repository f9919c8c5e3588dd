package models

import (
	"time"
)

// Offer is a time-bounded promotional item managed through the admin API.
// Nullable columns are pointers so that "absent" survives the round trip to
// the database and serializes as JSON null.
type Offer struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   *string    `json:"description"`
	IsActive      bool       `gorm:"not null;default:true;index:idx_offers_active" json:"isActive"`
	StartAt       *time.Time `gorm:"index:idx_offers_window" json:"startAt"`
	EndAt         *time.Time `gorm:"index:idx_offers_window" json:"endAt"`
	ThumbnailPath *string    `json:"thumbnailPath"`
	PdfPath       *string    `json:"pdfPath"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// OfferCreate carries the fields accepted on creation. IsActive defaults to
// false when omitted, matching the stored value.
type OfferCreate struct {
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	IsActive      bool       `json:"isActive"`
	StartAt       *time.Time `json:"startAt"`
	EndAt         *time.Time `json:"endAt"`
	ThumbnailPath *string    `json:"thumbnailPath"`
	PdfPath       *string    `json:"pdfPath"`
}

// OfferPatch carries a partial update. Each field tracks its own presence so
// that an omitted field, an explicit null and a value are three distinct
// inputs (isActive:false must not read as "not supplied").
type OfferPatch struct {
	Title         Field[string]    `json:"title"`
	Description   Field[string]    `json:"description"`
	IsActive      Field[bool]      `json:"isActive"`
	StartAt       Field[time.Time] `json:"startAt"`
	EndAt         Field[time.Time] `json:"endAt"`
	ThumbnailPath Field[string]    `json:"thumbnailPath"`
	PdfPath       Field[string]    `json:"pdfPath"`
}

// PublicOffer is the projection served by the unauthenticated listing.
type PublicOffer struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	StartAt       *time.Time `json:"startAt"`
	EndAt         *time.Time `json:"endAt"`
	ThumbnailPath *string    `json:"thumbnailPath"`
	PdfPath       *string    `json:"pdfPath"`
}

// Public returns the offer stripped down to its publicly served fields.
func (o Offer) Public() PublicOffer {
	return PublicOffer{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		StartAt:       o.StartAt,
		EndAt:         o.EndAt,
		ThumbnailPath: o.ThumbnailPath,
		PdfPath:       o.PdfPath,
	}
}

// AssetPaths returns the asset references attached to the offer.
func (o Offer) AssetPaths() []string {
	var paths []string
	if o.ThumbnailPath != nil && *o.ThumbnailPath != "" {
		paths = append(paths, *o.ThumbnailPath)
	}
	if o.PdfPath != nil && *o.PdfPath != "" {
		paths = append(paths, *o.PdfPath)
	}
	return paths
}
