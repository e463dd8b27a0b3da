package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// GroupeHandler serves TD/TP group endpoints, membership included.
type GroupeHandler struct {
	groupeSvc service.GroupeService
}

// NewGroupeHandler creates the GroupeHandler.
func NewGroupeHandler(groupeSvc service.GroupeService) *GroupeHandler {
	return &GroupeHandler{groupeSvc: groupeSvc}
}

// Create
// POST /api/v1/groupes
func (h *GroupeHandler) Create(c *gin.Context) {
	var req dto.CreateGroupeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	groupe, err := h.groupeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.NotFound(c, 12101, "formation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, groupe)
}

// Get
// GET /api/v1/groupes/:id
func (h *GroupeHandler) Get(c *gin.Context) {
	groupe, err := h.groupeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrGroupeNotFound) {
			response.NotFound(c, 13001, "groupe not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, groupe)
}

// List
// GET /api/v1/groupes?formation_id=xxx
func (h *GroupeHandler) List(c *gin.Context) {
	if formationID := c.Query("formation_id"); formationID != "" {
		groupes, err := h.groupeSvc.ListByFormation(c.Request.Context(), formationID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, groupes)
		return
	}

	groupes, err := h.groupeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, groupes)
}

// Update
// PUT /api/v1/groupes/:id
func (h *GroupeHandler) Update(c *gin.Context) {
	var req dto.UpdateGroupeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	groupe, err := h.groupeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrGroupeNotFound) {
			response.NotFound(c, 13001, "groupe not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, groupe)
}

// Delete
// DELETE /api/v1/groupes/:id
func (h *GroupeHandler) Delete(c *gin.Context) {
	if err := h.groupeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrGroupeNotFound) {
			response.NotFound(c, 13001, "groupe not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// AffecterEtudiant
// POST /api/v1/groupes/:id/etudiants
func (h *GroupeHandler) AffecterEtudiant(c *gin.Context) {
	var req dto.AffecterEtudiantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	err := h.groupeSvc.AffecterEtudiant(c.Request.Context(), c.Param("id"), req.EtudiantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupeNotFound):
			response.NotFound(c, 13001, "groupe not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "user not found")
		case errors.Is(err, service.ErrEtudiantSeulement):
			response.BadRequest(c, 13002, "only student accounts can join a groupe")
		case errors.Is(err, service.ErrFormationMismatch):
			response.BadRequest(c, 13003, "student is not enrolled in the groupe's formation")
		case errors.Is(err, service.ErrDejaDansGroupe):
			response.Conflict(c, 13004, "student already in groupe")
		case errors.Is(err, service.ErrGroupePlein):
			response.Conflict(c, 13005, "groupe is at capacity")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, nil)
}

// RetirerEtudiant
// DELETE /api/v1/groupes/:id/etudiants/:etudiantId
func (h *GroupeHandler) RetirerEtudiant(c *gin.Context) {
	err := h.groupeSvc.RetirerEtudiant(c.Request.Context(), c.Param("id"), c.Param("etudiantId"))
	if err != nil {
		if errors.Is(err, service.ErrPasDansGroupe) {
			response.NotFound(c, 13006, "student not in groupe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListEtudiants
// GET /api/v1/groupes/:id/etudiants
func (h *GroupeHandler) ListEtudiants(c *gin.Context) {
	etudiants, err := h.groupeSvc.ListEtudiants(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrGroupeNotFound) {
			response.NotFound(c, 13001, "groupe not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, etudiants)
}
