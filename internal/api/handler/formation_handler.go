package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// FormationHandler serves degree-program endpoints.
type FormationHandler struct {
	formationSvc service.FormationService
}

// NewFormationHandler creates the FormationHandler.
func NewFormationHandler(formationSvc service.FormationService) *FormationHandler {
	return &FormationHandler{formationSvc: formationSvc}
}

// Create
// POST /api/v1/formations
func (h *FormationHandler) Create(c *gin.Context) {
	var req dto.CreateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	formation, err := h.formationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartementNotFound) {
			response.NotFound(c, 12001, "departement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, formation)
}

// Get
// GET /api/v1/formations/:id
func (h *FormationHandler) Get(c *gin.Context) {
	formation, err := h.formationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.NotFound(c, 12101, "formation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, formation)
}

// List
// GET /api/v1/formations?departement_id=xxx
func (h *FormationHandler) List(c *gin.Context) {
	if departementID := c.Query("departement_id"); departementID != "" {
		formations, err := h.formationSvc.ListByDepartement(c.Request.Context(), departementID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, formations)
		return
	}

	formations, err := h.formationSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, formations)
}

// ListEtudiants
// GET /api/v1/formations/:id/etudiants
func (h *FormationHandler) ListEtudiants(c *gin.Context) {
	etudiants, err := h.formationSvc.ListEtudiants(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.NotFound(c, 12101, "formation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, etudiants)
}

// Update
// PUT /api/v1/formations/:id
func (h *FormationHandler) Update(c *gin.Context) {
	var req dto.UpdateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	formation, err := h.formationSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.NotFound(c, 12101, "formation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, formation)
}

// Delete
// DELETE /api/v1/formations/:id
func (h *FormationHandler) Delete(c *gin.Context) {
	if err := h.formationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.NotFound(c, 12101, "formation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
