package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
	"github.com/triomphant75/Gestion-Absence/pkg/storage"
)

// JustificatifHandler serves absence-justification endpoints.
type JustificatifHandler struct {
	justificatifSvc service.JustificatifService
}

// NewJustificatifHandler creates the JustificatifHandler.
func NewJustificatifHandler(justificatifSvc service.JustificatifService) *JustificatifHandler {
	return &JustificatifHandler{justificatifSvc: justificatifSvc}
}

// Deposer uploads a justification for one of the caller's absences.
// POST /api/v1/justificatifs (multipart: absence_id, motif, fichier)
func (h *JustificatifHandler) Deposer(c *gin.Context) {
	etudiantID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.DeposerJustificatifRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	file, err := c.FormFile("fichier")
	if err != nil {
		response.BadRequest(c, 18001, "missing fichier")
		return
	}

	justificatif, err := h.justificatifSvc.Deposer(c.Request.Context(), etudiantID, &req, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresenceNotFound):
			response.NotFound(c, 16001, "absence not found")
		case errors.Is(err, service.ErrPasUneAbsence):
			response.BadRequest(c, 18002, "presence is not an absence")
		case errors.Is(err, service.ErrPasSonAbsence):
			response.Forbidden(c, 18003, "absence belongs to another etudiant")
		case errors.Is(err, service.ErrJustificatifExists):
			response.Conflict(c, 18004, "absence already has a justificatif")
		case errors.Is(err, storage.ErrEmptyFile):
			response.BadRequest(c, 18005, "uploaded file is empty")
		case errors.Is(err, storage.ErrFileTooLarge):
			response.BadRequest(c, 18006, "uploaded file exceeds the size limit")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, justificatif)
}

// Accepter
// PUT /api/v1/justificatifs/:id/accepter
func (h *JustificatifHandler) Accepter(c *gin.Context) {
	h.traiter(c, true)
}

// Refuser
// PUT /api/v1/justificatifs/:id/refuser
func (h *JustificatifHandler) Refuser(c *gin.Context) {
	h.traiter(c, false)
}

func (h *JustificatifHandler) traiter(c *gin.Context, accepte bool) {
	validateurID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.TraiterJustificatifRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	justificatif, err := h.justificatifSvc.Traiter(c.Request.Context(), c.Param("id"), validateurID, accepte, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJustificatifNotFound):
			response.NotFound(c, 18007, "justificatif not found")
		case errors.Is(err, service.ErrDejaTraite):
			response.Conflict(c, 18008, "justificatif already processed")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, justificatif)
}

// Get
// GET /api/v1/justificatifs/:id
func (h *JustificatifHandler) Get(c *gin.Context) {
	justificatif, err := h.justificatifSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJustificatifNotFound) {
			response.NotFound(c, 18007, "justificatif not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, justificatif)
}

// Download streams the stored document.
// GET /api/v1/justificatifs/:id/download
func (h *JustificatifHandler) Download(c *gin.Context) {
	path, justificatif, err := h.justificatifSvc.FilePath(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJustificatifNotFound) {
			response.NotFound(c, 18007, "justificatif not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.FileAttachment(path, justificatif.FichierPath)
}

// List
// GET /api/v1/justificatifs?etudiant_id=xxx
func (h *JustificatifHandler) List(c *gin.Context) {
	if etudiantID := c.Query("etudiant_id"); etudiantID != "" {
		justificatifs, err := h.justificatifSvc.ListByEtudiant(c.Request.Context(), etudiantID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, justificatifs)
		return
	}

	justificatifs, err := h.justificatifSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, justificatifs)
}

// ListEnAttente
// GET /api/v1/justificatifs/en-attente
func (h *JustificatifHandler) ListEnAttente(c *gin.Context) {
	justificatifs, err := h.justificatifSvc.ListEnAttente(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, justificatifs)
}

// ListTraites lists the justificatifs a validateur has processed.
// GET /api/v1/justificatifs/traites/:id
func (h *JustificatifHandler) ListTraites(c *gin.Context) {
	justificatifs, err := h.justificatifSvc.ListTraitesByValidateur(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, justificatifs)
}

// Delete
// DELETE /api/v1/justificatifs/:id
func (h *JustificatifHandler) Delete(c *gin.Context) {
	if err := h.justificatifSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrJustificatifNotFound) {
			response.NotFound(c, 18007, "justificatif not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
