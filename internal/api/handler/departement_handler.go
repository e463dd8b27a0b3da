package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// DepartementHandler serves department endpoints.
type DepartementHandler struct {
	deptSvc service.DepartementService
}

// NewDepartementHandler creates the DepartementHandler.
func NewDepartementHandler(deptSvc service.DepartementService) *DepartementHandler {
	return &DepartementHandler{deptSvc: deptSvc}
}

// Create
// POST /api/v1/departements
func (h *DepartementHandler) Create(c *gin.Context) {
	var req dto.CreateDepartementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartementNomTaken) {
			response.Conflict(c, 12002, "departement name already used")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, dept)
}

// Get
// GET /api/v1/departements/:id
func (h *DepartementHandler) Get(c *gin.Context) {
	dept, err := h.deptSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDepartementNotFound) {
			response.NotFound(c, 12001, "departement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, dept)
}

// List
// GET /api/v1/departements
func (h *DepartementHandler) List(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, depts)
}

// Update
// PUT /api/v1/departements/:id
func (h *DepartementHandler) Update(c *gin.Context) {
	var req dto.UpdateDepartementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDepartementNotFound):
			response.NotFound(c, 12001, "departement not found")
		case errors.Is(err, service.ErrDepartementNomTaken):
			response.Conflict(c, 12002, "departement name already used")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, dept)
}

// Delete
// DELETE /api/v1/departements/:id
func (h *DepartementHandler) Delete(c *gin.Context) {
	if err := h.deptSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrDepartementNotFound) {
			response.NotFound(c, 12001, "departement not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
