package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// MatiereHandler serves course endpoints.
type MatiereHandler struct {
	matiereSvc service.MatiereService
}

// NewMatiereHandler creates the MatiereHandler.
func NewMatiereHandler(matiereSvc service.MatiereService) *MatiereHandler {
	return &MatiereHandler{matiereSvc: matiereSvc}
}

// Create
// POST /api/v1/matieres
func (h *MatiereHandler) Create(c *gin.Context) {
	var req dto.CreateMatiereRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	matiere, err := h.matiereSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormationNotFound):
			response.NotFound(c, 12101, "formation not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "enseignant not found")
		case errors.Is(err, service.ErrMatiereCodeTaken):
			response.Conflict(c, 14002, "matiere code already used")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, matiere)
}

// Get
// GET /api/v1/matieres/:id
func (h *MatiereHandler) Get(c *gin.Context) {
	matiere, err := h.matiereSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMatiereNotFound) {
			response.NotFound(c, 14001, "matiere not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, matiere)
}

// List
// GET /api/v1/matieres?formation_id=xxx&enseignant_id=yyy
func (h *MatiereHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if formationID := c.Query("formation_id"); formationID != "" {
		matieres, err := h.matiereSvc.ListByFormation(ctx, formationID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, matieres)
		return
	}
	if enseignantID := c.Query("enseignant_id"); enseignantID != "" {
		matieres, err := h.matiereSvc.ListByEnseignant(ctx, enseignantID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, matieres)
		return
	}

	matieres, err := h.matiereSvc.List(ctx)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, matieres)
}

// Update
// PUT /api/v1/matieres/:id
func (h *MatiereHandler) Update(c *gin.Context) {
	var req dto.UpdateMatiereRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	matiere, err := h.matiereSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatiereNotFound):
			response.NotFound(c, 14001, "matiere not found")
		case errors.Is(err, service.ErrMatiereCodeTaken):
			response.Conflict(c, 14002, "matiere code already used")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, matiere)
}

// Delete
// DELETE /api/v1/matieres/:id
func (h *MatiereHandler) Delete(c *gin.Context) {
	if err := h.matiereSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMatiereNotFound) {
			response.NotFound(c, 14001, "matiere not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
