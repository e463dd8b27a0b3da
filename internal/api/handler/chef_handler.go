package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// ChefDepartementHandler serves the department head's scoped views.
type ChefDepartementHandler struct {
	chefSvc service.ChefDepartementService
}

// NewChefDepartementHandler creates the ChefDepartementHandler.
func NewChefDepartementHandler(chefSvc service.ChefDepartementService) *ChefDepartementHandler {
	return &ChefDepartementHandler{chefSvc: chefSvc}
}

// Etudiants lists the students of the caller's own departement.
// GET /api/v1/chef/etudiants?formation_id=xxx
func (h *ChefDepartementHandler) Etudiants(c *gin.Context) {
	departementID, ok := MustGetDepartementID(c)
	if !ok {
		return
	}
	if departementID == "" {
		response.Forbidden(c, 10003, "no departement attached to this account")
		return
	}

	ctx := c.Request.Context()
	if formationID := c.Query("formation_id"); formationID != "" {
		resumes, err := h.chefSvc.EtudiantsByFormation(ctx, departementID, formationID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFormationNotFound):
				response.NotFound(c, 12101, "formation not found")
			case errors.Is(err, service.ErrHorsDepartement):
				response.Forbidden(c, 12102, "formation is outside your departement")
			default:
				response.InternalError(c)
			}
			return
		}
		response.OK(c, resumes)
		return
	}

	resumes, err := h.chefSvc.Etudiants(ctx, departementID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resumes)
}
