package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// AvertissementHandler serves warning endpoints.
type AvertissementHandler struct {
	avertissementSvc service.AvertissementService
}

// NewAvertissementHandler creates the AvertissementHandler.
func NewAvertissementHandler(avertissementSvc service.AvertissementService) *AvertissementHandler {
	return &AvertissementHandler{avertissementSvc: avertissementSvc}
}

// Create is a manual warning by staff.
// POST /api/v1/avertissements
func (h *AvertissementHandler) Create(c *gin.Context) {
	createurID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAvertissementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	avertissement, err := h.avertissementSvc.Create(c.Request.Context(), &req, createurID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "etudiant not found")
		case errors.Is(err, service.ErrMatiereNotFound):
			response.NotFound(c, 14001, "matiere not found")
		case errors.Is(err, service.ErrAvertissementExists):
			response.Conflict(c, 17002, "avertissement already exists for this etudiant and matiere")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, avertissement)
}

// Get
// GET /api/v1/avertissements/:id
func (h *AvertissementHandler) Get(c *gin.Context) {
	avertissement, err := h.avertissementSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAvertissementNotFound) {
			response.NotFound(c, 17001, "avertissement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, avertissement)
}

// List
// GET /api/v1/avertissements?etudiant_id=xxx&matiere_id=yyy&automatique=true
func (h *AvertissementHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	etudiantID := c.Query("etudiant_id")
	matiereID := c.Query("matiere_id")

	var (
		avertissements []model.Avertissement
		err            error
	)
	switch {
	case etudiantID != "" && matiereID != "":
		avertissements, err = h.avertissementSvc.ListByEtudiantAndMatiere(ctx, etudiantID, matiereID)
	case etudiantID != "":
		avertissements, err = h.avertissementSvc.ListByEtudiant(ctx, etudiantID)
	case matiereID != "":
		avertissements, err = h.avertissementSvc.ListByMatiere(ctx, matiereID)
	case c.Query("automatique") != "":
		automatique, parseErr := strconv.ParseBool(c.Query("automatique"))
		if parseErr != nil {
			response.BadRequest(c, 10001, "invalid automatique value")
			return
		}
		avertissements, err = h.avertissementSvc.ListByAutomatique(ctx, automatique)
	default:
		avertissements, err = h.avertissementSvc.List(ctx)
	}
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, avertissements)
}

// UpdateMotif
// PUT /api/v1/avertissements/:id
func (h *AvertissementHandler) UpdateMotif(c *gin.Context) {
	var req dto.UpdateMotifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	avertissement, err := h.avertissementSvc.UpdateMotif(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAvertissementNotFound) {
			response.NotFound(c, 17001, "avertissement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, avertissement)
}

// Delete
// DELETE /api/v1/avertissements/:id
func (h *AvertissementHandler) Delete(c *gin.Context) {
	if err := h.avertissementSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAvertissementNotFound) {
			response.NotFound(c, 17001, "avertissement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
