package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

// ProjectHandler handles portfolio project CRUD
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// HandleList returns projects, optionally filtered by category and featured
// flag. Matches the admin panel contract: only featured=true filters.
func (h *ProjectHandler) HandleList(c *gin.Context) {
	filter := models.ProjectFilter{
		Category: c.Query("category"),
	}
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	projects, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(projects),
		"data":    projects,
	})
}

// HandleGet returns a single project by id.
func (h *ProjectHandler) HandleGet(c *gin.Context) {
	project, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Proyecto no encontrado")
		return
	}
	respondOK(c, project)
}

// HandleCreate creates a new project.
func (h *ProjectHandler) HandleCreate(c *gin.Context) {
	var req services.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondCreated(c, project)
}

// HandleUpdate patches an existing project.
func (h *ProjectHandler) HandleUpdate(c *gin.Context) {
	var req services.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Proyecto no encontrado")
		return
	}
	respondOK(c, project)
}

// HandleDelete removes a project.
func (h *ProjectHandler) HandleDelete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Proyecto no encontrado")
		return
	}
	respondMessage(c, "Proyecto eliminado exitosamente")
}
