package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

// ProfileHandler handles the singleton profile document
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// HandleGet returns the profile, creating the default one on first read.
func (h *ProfileHandler) HandleGet(c *gin.Context) {
	profile, err := h.profileService.GetOrCreate(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, profile)
}

// HandleUpdate patches the profile, creating it first if absent.
func (h *ProfileHandler) HandleUpdate(c *gin.Context) {
	var req services.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	profile, err := h.profileService.Upsert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, profile)
}
