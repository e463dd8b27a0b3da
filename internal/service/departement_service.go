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
	ErrDepartementNotFound = errors.New("departement not found")
	ErrDepartementNomTaken = errors.New("departement name already used")
)

// DepartementService manages university departments.
type DepartementService interface {
	Create(ctx context.Context, req *dto.CreateDepartementRequest) (*model.Departement, error)
	GetByID(ctx context.Context, id string) (*model.Departement, error)
	List(ctx context.Context) ([]model.Departement, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartementRequest) (*model.Departement, error)
	Delete(ctx context.Context, id string) error
}

type departementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartementService creates the department service.
func NewDepartementService(repo *repository.Repository, logger *zap.Logger) DepartementService {
	return &departementService{repo: repo, logger: logger}
}

func (s *departementService) Create(ctx context.Context, req *dto.CreateDepartementRequest) (*model.Departement, error) {
	if _, err := s.repo.Departement.GetByNom(ctx, req.Nom); err == nil {
		return nil, ErrDepartementNomTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept := &model.Departement{
		Nom:         req.Nom,
		Description: req.Description,
		Actif:       true,
	}
	if err := s.repo.Departement.Create(ctx, dept); err != nil {
		return nil, err
	}

	s.logger.Info("departement created", zap.String("departement_id", dept.DepartementID))
	return dept, nil
}

func (s *departementService) GetByID(ctx context.Context, id string) (*model.Departement, error) {
	dept, err := s.repo.Departement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartementNotFound
		}
		return nil, err
	}
	return dept, nil
}

func (s *departementService) List(ctx context.Context) ([]model.Departement, error) {
	return s.repo.Departement.List(ctx)
}

func (s *departementService) Update(ctx context.Context, id string, req *dto.UpdateDepartementRequest) (*model.Departement, error) {
	dept, err := s.repo.Departement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartementNotFound
		}
		return nil, err
	}

	if req.Nom != nil && *req.Nom != dept.Nom {
		if _, err := s.repo.Departement.GetByNom(ctx, *req.Nom); err == nil {
			return nil, ErrDepartementNomTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		dept.Nom = *req.Nom
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Actif != nil {
		dept.Actif = *req.Actif
	}

	if err := s.repo.Departement.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Departement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartementNotFound
		}
		return err
	}
	return s.repo.Departement.Delete(ctx, id)
}
