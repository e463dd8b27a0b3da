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

var (
	ErrMatiereNotFound  = errors.New("matiere not found")
	ErrMatiereCodeTaken = errors.New("matiere code already used")
)

// MatiereService manages courses.
type MatiereService interface {
	Create(ctx context.Context, req *dto.CreateMatiereRequest) (*model.Matiere, error)
	GetByID(ctx context.Context, id string) (*model.Matiere, error)
	List(ctx context.Context) ([]model.Matiere, error)
	ListByFormation(ctx context.Context, formationID string) ([]model.Matiere, error)
	ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Matiere, error)
	Update(ctx context.Context, id string, req *dto.UpdateMatiereRequest) (*model.Matiere, error)
	Delete(ctx context.Context, id string) error
}

type matiereService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMatiereService creates the course service.
func NewMatiereService(repo *repository.Repository, logger *zap.Logger) MatiereService {
	return &matiereService{repo: repo, logger: logger}
}

func (s *matiereService) Create(ctx context.Context, req *dto.CreateMatiereRequest) (*model.Matiere, error) {
	if _, err := s.repo.Formation.GetByID(ctx, req.FormationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}

	if req.Code != "" {
		if _, err := s.repo.Matiere.GetByCode(ctx, req.Code); err == nil {
			return nil, ErrMatiereCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.EnseignantID != "" {
		if _, err := s.repo.User.GetByID(ctx, req.EnseignantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	matiere := &model.Matiere{
		Nom:           req.Nom,
		Code:          req.Code,
		Description:   req.Description,
		FormationID:   req.FormationID,
		EnseignantID:  req.EnseignantID,
		TypeSeance:    model.TypeSeanceCM,
		Coefficient:   req.Coefficient,
		HeuresTotal:   req.HeuresTotal,
		SeuilAbsences: req.SeuilAbsences,
		Actif:         true,
	}
	if req.TypeSeance != "" {
		matiere.TypeSeance = model.TypeSeance(req.TypeSeance)
	}
	if matiere.Coefficient == 0 {
		matiere.Coefficient = 1.0
	}
	if matiere.SeuilAbsences == 0 {
		matiere.SeuilAbsences = 3
	}

	if err := s.repo.Matiere.Create(ctx, matiere); err != nil {
		return nil, err
	}

	s.logger.Info("matiere created", zap.String("matiere_id", matiere.MatiereID))
	return matiere, nil
}

func (s *matiereService) GetByID(ctx context.Context, id string) (*model.Matiere, error) {
	matiere, err := s.repo.Matiere.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatiereNotFound
		}
		return nil, err
	}
	return matiere, nil
}

func (s *matiereService) List(ctx context.Context) ([]model.Matiere, error) {
	return s.repo.Matiere.List(ctx)
}

func (s *matiereService) ListByFormation(ctx context.Context, formationID string) ([]model.Matiere, error) {
	return s.repo.Matiere.ListByFormation(ctx, formationID)
}

func (s *matiereService) ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Matiere, error) {
	return s.repo.Matiere.ListByEnseignant(ctx, enseignantID)
}

func (s *matiereService) Update(ctx context.Context, id string, req *dto.UpdateMatiereRequest) (*model.Matiere, error) {
	matiere, err := s.repo.Matiere.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatiereNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != matiere.Code {
		if *req.Code != "" {
			if _, err := s.repo.Matiere.GetByCode(ctx, *req.Code); err == nil {
				return nil, ErrMatiereCodeTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		matiere.Code = *req.Code
	}
	if req.Nom != nil {
		matiere.Nom = *req.Nom
	}
	if req.Description != nil {
		matiere.Description = *req.Description
	}
	if req.EnseignantID != nil {
		matiere.EnseignantID = *req.EnseignantID
	}
	if req.TypeSeance != nil {
		matiere.TypeSeance = model.TypeSeance(*req.TypeSeance)
	}
	if req.Coefficient != nil {
		matiere.Coefficient = *req.Coefficient
	}
	if req.HeuresTotal != nil {
		matiere.HeuresTotal = *req.HeuresTotal
	}
	if req.SeuilAbsences != nil {
		matiere.SeuilAbsences = *req.SeuilAbsences
	}
	if req.Actif != nil {
		matiere.Actif = *req.Actif
	}

	if err := s.repo.Matiere.Update(ctx, matiere); err != nil {
		return nil, err
	}
	return matiere, nil
}

func (s *matiereService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Matiere.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatiereNotFound
		}
		return err
	}
	return s.repo.Matiere.Delete(ctx, id)
}
