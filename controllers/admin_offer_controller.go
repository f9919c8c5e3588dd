package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/repository"
	"github.com/jmathewk/PromoDeck/utils"
)

// OfferController serves the authenticated offer CRUD surface
type OfferController struct {
	Repo repository.OfferRepository
}

// List returns every offer, newest first, for the admin panel
func (oc *OfferController) List(c *gin.Context) {
	offers, err := oc.Repo.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.OK(c, offers)
}

// Create persists a new offer
func (oc *OfferController) Create(c *gin.Context) {
	utils.LogInfo("CreateOffer called")
	var req models.OfferCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create request: %v", err)
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	offer, err := oc.Repo.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.LogInfo("Created offer %d", offer.ID)
	utils.Created(c, offer)
}

// Update applies a partial update to an existing offer. Only fields present
// in the body change; isActive:false counts as present.
func (oc *OfferController) Update(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")
	id, ok := offerID(c)
	if !ok {
		return
	}

	var patch models.OfferPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.LogError("Invalid update request: %v", err)
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	offer, err := oc.Repo.Update(id, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.LogInfo("Updated offer %d", offer.ID)
	utils.OK(c, offer)
}

// Delete removes an offer permanently, reclaiming its assets best-effort
func (oc *OfferController) Delete(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")
	id, ok := offerID(c)
	if !ok {
		return
	}

	if err := oc.Repo.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.LogInfo("Deleted offer %d", id)
	utils.OK(c, gin.H{"ok": true})
}

// offerID parses the :id path parameter. A non-numeric id reads the same as
// an unknown one.
func offerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, "Offer not found.")
		return 0, false
	}
	return uint(id), true
}
