package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// PresenceHandler serves attendance endpoints.
type PresenceHandler struct {
	presenceSvc service.PresenceService
}

// NewPresenceHandler creates the PresenceHandler.
func NewPresenceHandler(presenceSvc service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceSvc: presenceSvc}
}

// ValidateCode is the student self-check-in.
// POST /api/v1/presences/validate-code
func (h *PresenceHandler) ValidateCode(c *gin.Context) {
	etudiantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	presence, err := h.presenceSvc.ValidateCode(c.Request.Context(), etudiantID, &req)
	if err != nil {
		h.writePresenceError(c, err)
		return
	}
	response.Created(c, presence)
}

// Create is a manual staff entry.
// POST /api/v1/presences
func (h *PresenceHandler) Create(c *gin.Context) {
	var req dto.CreatePresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	presence, err := h.presenceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writePresenceError(c, err)
		return
	}
	response.Created(c, presence)
}

// Update
// PUT /api/v1/presences/:id
func (h *PresenceHandler) Update(c *gin.Context) {
	var req dto.UpdatePresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	presence, err := h.presenceSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writePresenceError(c, err)
		return
	}
	response.OK(c, presence)
}

// ListByEtudiant
// GET /api/v1/presences/etudiant/:id
func (h *PresenceHandler) ListByEtudiant(c *gin.Context) {
	presences, err := h.presenceSvc.ListByEtudiant(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, presences)
}

// ListBySeance
// GET /api/v1/presences/seance/:id
func (h *PresenceHandler) ListBySeance(c *gin.Context) {
	presences, err := h.presenceSvc.ListBySeance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, presences)
}

// AbsencesNonJustifiees
// GET /api/v1/presences/etudiant/:id/absences-non-justifiees
func (h *PresenceHandler) AbsencesNonJustifiees(c *gin.Context) {
	absences, err := h.presenceSvc.ListAbsencesNonJustifiees(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, absences)
}

// Statistiques
// GET /api/v1/presences/statistiques/:id
func (h *PresenceHandler) Statistiques(c *gin.Context) {
	stats, err := h.presenceSvc.Statistiques(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}

// CountAbsences
// GET /api/v1/presences/absences/count?etudiant_id=xxx&matiere_id=yyy
func (h *PresenceHandler) CountAbsences(c *gin.Context) {
	etudiantID := c.Query("etudiant_id")
	matiereID := c.Query("matiere_id")
	if etudiantID == "" || matiereID == "" {
		response.BadRequest(c, 10001, "etudiant_id and matiere_id are required")
		return
	}

	count, err := h.presenceSvc.CountAbsences(c.Request.Context(), etudiantID, matiereID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": count})
}

// Delete
// DELETE /api/v1/presences/:id
func (h *PresenceHandler) Delete(c *gin.Context) {
	if err := h.presenceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPresenceNotFound) {
			response.NotFound(c, 16001, "presence not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

func (h *PresenceHandler) writePresenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeanceNotFound):
		response.NotFound(c, 15001, "seance not found")
	case errors.Is(err, service.ErrPresenceNotFound):
		response.NotFound(c, 16001, "presence not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11004, "user not found")
	case errors.Is(err, service.ErrSeanceNotActive):
		response.Conflict(c, 15011, "seance is not running")
	case errors.Is(err, service.ErrSeanceAnnulee):
		response.Conflict(c, 15009, "seance is cancelled")
	case errors.Is(err, service.ErrCodeExpire):
		response.Conflict(c, 16002, "code expired")
	case errors.Is(err, service.ErrCodeIncorrect):
		response.BadRequest(c, 16003, "incorrect code")
	case errors.Is(err, service.ErrEtudiantSeulement):
		response.Forbidden(c, 16004, "only students can check in")
	case errors.Is(err, service.ErrNonEligible):
		response.Forbidden(c, 16005, "etudiant is not expected at this seance")
	case errors.Is(err, service.ErrDejaValide):
		response.Conflict(c, 16006, "presence already recorded")
	case errors.Is(err, service.ErrSeanceCloturee):
		response.Conflict(c, 16007, "seance ended, attendance can no longer be edited")
	default:
		response.InternalError(c)
	}
}
