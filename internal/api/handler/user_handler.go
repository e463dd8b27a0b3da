package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/service"
	"github.com/triomphant75/Gestion-Absence/pkg/response"
)

// UserHandler serves account management endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Create
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, 11005, "email already registered")
		case errors.Is(err, service.ErrMissingStudentFields):
			response.BadRequest(c, 11006, "student accounts need numero_etudiant and formation_id")
		case errors.Is(err, service.ErrMissingStaffFields):
			response.BadRequest(c, 11007, "staff accounts need numero_enseignant and departement_id")
		case errors.Is(err, service.ErrFormationNotFound):
			response.NotFound(c, 12101, "formation not found")
		case errors.Is(err, service.ErrDepartementNotFound):
			response.NotFound(c, 12001, "departement not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, user)
}

// Get
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// List
// GET /api/v1/users?role=ETUDIANT
func (h *UserHandler) List(c *gin.Context) {
	var (
		users []model.User
		err   error
	)
	if role := c.Query("role"); role != "" {
		users, err = h.userSvc.ListByRole(c.Request.Context(), model.Role(role))
	} else {
		users, err = h.userSvc.List(c.Request.Context())
	}
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// Update
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid payload")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "user not found")
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, 11005, "email already registered")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, user)
}

// Delete
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
