package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var ErrFormationNotFound = errors.New("formation not found")

// FormationService manages degree programs.
type FormationService interface {
	Create(ctx context.Context, req *dto.CreateFormationRequest) (*model.Formation, error)
	GetByID(ctx context.Context, id string) (*model.Formation, error)
	List(ctx context.Context) ([]model.Formation, error)
	ListByDepartement(ctx context.Context, departementID string) ([]model.Formation, error)
	ListEtudiants(ctx context.Context, formationID string) ([]model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateFormationRequest) (*model.Formation, error)
	Delete(ctx context.Context, id string) error
}

type formationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFormationService creates the degree-program service.
func NewFormationService(repo *repository.Repository, logger *zap.Logger) FormationService {
	return &formationService{repo: repo, logger: logger}
}

func (s *formationService) Create(ctx context.Context, req *dto.CreateFormationRequest) (*model.Formation, error) {
	if _, err := s.repo.Departement.GetByID(ctx, req.DepartementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartementNotFound
		}
		return nil, err
	}

	formation := &model.Formation{
		Nom:           req.Nom,
		Description:   req.Description,
		DepartementID: req.DepartementID,
		Niveau:        req.Niveau,
		Actif:         true,
	}
	if err := s.repo.Formation.Create(ctx, formation); err != nil {
		return nil, err
	}

	s.logger.Info("formation created", zap.String("formation_id", formation.FormationID))
	return formation, nil
}

func (s *formationService) GetByID(ctx context.Context, id string) (*model.Formation, error) {
	formation, err := s.repo.Formation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	return formation, nil
}

func (s *formationService) List(ctx context.Context) ([]model.Formation, error) {
	return s.repo.Formation.List(ctx)
}

func (s *formationService) ListByDepartement(ctx context.Context, departementID string) ([]model.Formation, error) {
	return s.repo.Formation.ListByDepartement(ctx, departementID)
}

func (s *formationService) ListEtudiants(ctx context.Context, formationID string) ([]model.User, error) {
	if _, err := s.repo.Formation.GetByID(ctx, formationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	return s.repo.User.ListByFormationAndRole(ctx, formationID, model.RoleEtudiant)
}

func (s *formationService) Update(ctx context.Context, id string, req *dto.UpdateFormationRequest) (*model.Formation, error) {
	formation, err := s.repo.Formation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}

	if req.Nom != nil {
		formation.Nom = *req.Nom
	}
	if req.Description != nil {
		formation.Description = *req.Description
	}
	if req.Niveau != nil {
		formation.Niveau = *req.Niveau
	}
	if req.Actif != nil {
		formation.Actif = *req.Actif
	}

	if err := s.repo.Formation.Update(ctx, formation); err != nil {
		return nil, err
	}
	return formation, nil
}

func (s *formationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Formation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormationNotFound
		}
		return err
	}
	return s.repo.Formation.Delete(ctx, id)
}
