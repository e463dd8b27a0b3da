package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// SeanceHandler serves the session lifecycle and export endpoints.
type SeanceHandler struct {
	seanceSvc service.SeanceService
	exportSvc service.ExportService
}

// NewSeanceHandler creates the SeanceHandler.
func NewSeanceHandler(seanceSvc service.SeanceService, exportSvc service.ExportService) *SeanceHandler {
	return &SeanceHandler{seanceSvc: seanceSvc, exportSvc: exportSvc}
}

// Create
// POST /api/v1/seances
func (h *SeanceHandler) Create(c *gin.Context) {
	var req dto.CreateSeanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	seance, err := h.seanceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.Created(c, seance)
}

// Get
// GET /api/v1/seances/:id
func (h *SeanceHandler) Get(c *gin.Context) {
	seance, err := h.seanceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, seance)
}

// List
// GET /api/v1/seances?matiere_id=xxx
func (h *SeanceHandler) List(c *gin.Context) {
	if matiereID := c.Query("matiere_id"); matiereID != "" {
		seances, err := h.seanceSvc.ListByMatiere(c.Request.Context(), matiereID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, seances)
		return
	}

	seances, err := h.seanceSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, seances)
}

// ListByEnseignant
// GET /api/v1/seances/enseignant/:id
func (h *SeanceHandler) ListByEnseignant(c *gin.Context) {
	seances, err := h.seanceSvc.ListByEnseignant(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, seances)
}

// ListUpcomingByEnseignant
// GET /api/v1/seances/enseignant/:id/upcoming
func (h *SeanceHandler) ListUpcomingByEnseignant(c *gin.Context) {
	seances, err := h.seanceSvc.ListUpcomingByEnseignant(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, seances)
}

// ListByGroupe
// GET /api/v1/seances/groupe/:id
func (h *SeanceHandler) ListByGroupe(c *gin.Context) {
	seances, err := h.seanceSvc.ListByGroupe(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, seances)
}

// Update
// PUT /api/v1/seances/:id
func (h *SeanceHandler) Update(c *gin.Context) {
	var req dto.UpdateSeanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	seance, err := h.seanceSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, seance)
}

// Delete
// DELETE /api/v1/seances/:id
func (h *SeanceHandler) Delete(c *gin.Context) {
	if err := h.seanceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Start
// POST /api/v1/seances/:id/start
func (h *SeanceHandler) Start(c *gin.Context) {
	enseignantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	code, err := h.seanceSvc.Start(c.Request.Context(), c.Param("id"), enseignantID)
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, code)
}

// Stop
// POST /api/v1/seances/:id/stop
func (h *SeanceHandler) Stop(c *gin.Context) {
	enseignantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.seanceSvc.Stop(c.Request.Context(), c.Param("id"), enseignantID); err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Cancel
// PUT /api/v1/seances/:id/cancel
func (h *SeanceHandler) Cancel(c *gin.Context) {
	if err := h.seanceSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, nil)
}

// RenewCode
// POST /api/v1/seances/:id/renew-code
func (h *SeanceHandler) RenewCode(c *gin.Context) {
	enseignantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	code, err := h.seanceSvc.RenewCode(c.Request.Context(), c.Param("id"), enseignantID)
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, code)
}

// CurrentCode
// GET /api/v1/seances/:id/code
func (h *SeanceHandler) CurrentCode(c *gin.Context) {
	enseignantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	code, err := h.seanceSvc.CurrentCode(c.Request.Context(), c.Param("id"), enseignantID)
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, code)
}

// Roster
// GET /api/v1/seances/:id/roster
func (h *SeanceHandler) Roster(c *gin.Context) {
	roster, err := h.seanceSvc.Roster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSeanceError(c, err)
		return
	}
	response.OK(c, roster)
}

// Export
// GET /api/v1/seances/:id/export
func (h *SeanceHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.FeuillePresence(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExportFailed) {
			response.InternalError(c)
			return
		}
		h.writeSeanceError(c, err)
		return
	}

	const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// ICal
// GET /api/v1/seances/enseignant/:id/ical
func (h *SeanceHandler) ICal(c *gin.Context) {
	feed, err := h.exportSvc.CalendrierEnseignant(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "enseignant not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=seances.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *SeanceHandler) writeSeanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeanceNotFound):
		response.NotFound(c, 15001, "seance not found")
	case errors.Is(err, service.ErrMatiereNotFound):
		response.NotFound(c, 14001, "matiere not found")
	case errors.Is(err, service.ErrGroupeNotFound):
		response.NotFound(c, 13001, "groupe not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11004, "enseignant not found")
	case errors.Is(err, service.ErrPeriodeInvalide):
		response.BadRequest(c, 15002, "date_fin must be after date_debut")
	case errors.Is(err, service.ErrGroupeRequis):
		response.BadRequest(c, 15003, "TD_TP seance needs a groupe")
	case errors.Is(err, service.ErrGroupeInterdit):
		response.BadRequest(c, 15004, "CM seance cannot have a groupe")
	case errors.Is(err, service.ErrFormationMismatch):
		response.BadRequest(c, 15005, "groupe formation does not match matiere formation")
	case errors.Is(err, service.ErrPasProprietaire):
		response.Forbidden(c, 15006, "seance belongs to another enseignant")
	case errors.Is(err, service.ErrSeanceDejaDemarree):
		response.Conflict(c, 15007, "seance already started")
	case errors.Is(err, service.ErrSeanceTerminee):
		response.Conflict(c, 15008, "seance already finished")
	case errors.Is(err, service.ErrSeanceAnnulee):
		response.Conflict(c, 15009, "seance is cancelled")
	case errors.Is(err, service.ErrSeanceEnCours):
		response.Conflict(c, 15010, "seance is running")
	case errors.Is(err, service.ErrSeanceNotActive):
		response.Conflict(c, 15011, "seance is not running")
	default:
		response.InternalError(c)
	}
}
