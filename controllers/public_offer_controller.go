package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/repository"
	"github.com/jmathewk/PromoDeck/utils"
)

// DefaultPublicLimit is the number of offers returned when no limit is given
const DefaultPublicLimit = 3

// MaxPublicLimit caps the public listing to bound response size
const MaxPublicLimit = 50

// PublicOfferController serves the unauthenticated read surface
type PublicOfferController struct {
	Repo repository.OfferRepository

	// Now supplies the reference instant for visibility; nil means wall clock.
	Now func() time.Time
}

// Offers lists currently visible offers, newest first
func (pc *PublicOfferController) Offers(c *gin.Context) {
	limit := DefaultPublicLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			limit = v
		}
	}
	if limit > MaxPublicLimit {
		limit = MaxPublicLimit
	}

	offers, err := pc.Repo.ListVisible(pc.now(), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	public := make([]models.PublicOffer, 0, len(offers))
	for _, offer := range offers {
		public = append(public, offer.Public())
	}
	utils.OK(c, public)
}

func (pc *PublicOfferController) now() time.Time {
	if pc.Now != nil {
		return pc.Now().UTC()
	}
	return time.Now().UTC()
}
