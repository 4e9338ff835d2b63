package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

// ContentHandler handles the experience, education and certification
// collections. They share the CRUD shape and differ only in entity.
type ContentHandler struct {
	experienceService    *services.ExperienceService
	educationService     *services.EducationService
	certificationService *services.CertificationService
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	experienceService *services.ExperienceService,
	educationService *services.EducationService,
	certificationService *services.CertificationService,
) *ContentHandler {
	return &ContentHandler{
		experienceService:    experienceService,
		educationService:     educationService,
		certificationService: certificationService,
	}
}

// Experiences

func (h *ContentHandler) HandleListExperiences(c *gin.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, experiences)
}

func (h *ContentHandler) HandleGetExperience(c *gin.Context) {
	experience, err := h.experienceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Experiencia no encontrada")
		return
	}
	respondOK(c, experience)
}

func (h *ContentHandler) HandleCreateExperience(c *gin.Context) {
	var req services.ExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	experience, err := h.experienceService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondCreated(c, experience)
}

func (h *ContentHandler) HandleUpdateExperience(c *gin.Context) {
	var req services.ExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	experience, err := h.experienceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Experiencia no encontrada")
		return
	}
	respondOK(c, experience)
}

func (h *ContentHandler) HandleDeleteExperience(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Experiencia no encontrada")
		return
	}
	respondMessage(c, "Experiencia eliminada correctamente")
}

// Education

func (h *ContentHandler) HandleListEducation(c *gin.Context) {
	entries, err := h.educationService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, entries)
}

func (h *ContentHandler) HandleGetEducation(c *gin.Context) {
	education, err := h.educationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Educación no encontrada")
		return
	}
	respondOK(c, education)
}

func (h *ContentHandler) HandleCreateEducation(c *gin.Context) {
	var req services.EducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	education, err := h.educationService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondCreated(c, education)
}

func (h *ContentHandler) HandleUpdateEducation(c *gin.Context) {
	var req services.EducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	education, err := h.educationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Educación no encontrada")
		return
	}
	respondOK(c, education)
}

func (h *ContentHandler) HandleDeleteEducation(c *gin.Context) {
	if err := h.educationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Educación no encontrada")
		return
	}
	respondMessage(c, "Educación eliminada correctamente")
}

// Certifications

func (h *ContentHandler) HandleListCertifications(c *gin.Context) {
	certifications, err := h.certificationService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, certifications)
}

func (h *ContentHandler) HandleGetCertification(c *gin.Context) {
	certification, err := h.certificationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Certificación no encontrada")
		return
	}
	respondOK(c, certification)
}

func (h *ContentHandler) HandleCreateCertification(c *gin.Context) {
	var req services.CertificationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	certification, err := h.certificationService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondCreated(c, certification)
}

func (h *ContentHandler) HandleUpdateCertification(c *gin.Context) {
	var req services.CertificationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	certification, err := h.certificationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Certificación no encontrada")
		return
	}
	respondOK(c, certification)
}

func (h *ContentHandler) HandleDeleteCertification(c *gin.Context) {
	if err := h.certificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Certificación no encontrada")
		return
	}
	respondMessage(c, "Certificación eliminada correctamente")
}
