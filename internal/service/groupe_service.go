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
	ErrGroupeNotFound    = errors.New("groupe not found")
	ErrGroupePlein       = errors.New("groupe is at capacity")
	ErrDejaDansGroupe    = errors.New("student already in groupe")
	ErrPasDansGroupe     = errors.New("student not in groupe")
	ErrEtudiantSeulement = errors.New("only student accounts can join a groupe")
	ErrFormationMismatch = errors.New("student is not enrolled in the groupe's formation")
)

// GroupeService manages TD/TP groups and their membership.
type GroupeService interface {
	Create(ctx context.Context, req *dto.CreateGroupeRequest) (*model.Groupe, error)
	GetByID(ctx context.Context, id string) (*model.Groupe, error)
	List(ctx context.Context) ([]model.Groupe, error)
	ListByFormation(ctx context.Context, formationID string) ([]model.Groupe, error)
	Update(ctx context.Context, id string, req *dto.UpdateGroupeRequest) (*model.Groupe, error)
	Delete(ctx context.Context, id string) error

	AffecterEtudiant(ctx context.Context, groupeID, etudiantID string) error
	RetirerEtudiant(ctx context.Context, groupeID, etudiantID string) error
	ListEtudiants(ctx context.Context, groupeID string) ([]model.User, error)
}

type groupeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupeService creates the group service.
func NewGroupeService(repo *repository.Repository, logger *zap.Logger) GroupeService {
	return &groupeService{repo: repo, logger: logger}
}

func (s *groupeService) Create(ctx context.Context, req *dto.CreateGroupeRequest) (*model.Groupe, error) {
	if _, err := s.repo.Formation.GetByID(ctx, req.FormationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}

	groupe := &model.Groupe{
		Nom:         req.Nom,
		FormationID: req.FormationID,
		CapaciteMax: req.CapaciteMax,
		Actif:       true,
	}
	if groupe.CapaciteMax == 0 {
		groupe.CapaciteMax = 30
	}

	if err := s.repo.Groupe.Create(ctx, groupe); err != nil {
		return nil, err
	}

	s.logger.Info("groupe created", zap.String("groupe_id", groupe.GroupeID))
	return groupe, nil
}

func (s *groupeService) GetByID(ctx context.Context, id string) (*model.Groupe, error) {
	groupe, err := s.repo.Groupe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupeNotFound
		}
		return nil, err
	}
	return groupe, nil
}

func (s *groupeService) List(ctx context.Context) ([]model.Groupe, error) {
	return s.repo.Groupe.List(ctx)
}

func (s *groupeService) ListByFormation(ctx context.Context, formationID string) ([]model.Groupe, error) {
	return s.repo.Groupe.ListByFormation(ctx, formationID)
}

func (s *groupeService) Update(ctx context.Context, id string, req *dto.UpdateGroupeRequest) (*model.Groupe, error) {
	groupe, err := s.repo.Groupe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupeNotFound
		}
		return nil, err
	}

	if req.Nom != nil {
		groupe.Nom = *req.Nom
	}
	if req.CapaciteMax != nil {
		groupe.CapaciteMax = *req.CapaciteMax
	}
	if req.Actif != nil {
		groupe.Actif = *req.Actif
	}

	if err := s.repo.Groupe.Update(ctx, groupe); err != nil {
		return nil, err
	}
	return groupe, nil
}

func (s *groupeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Groupe.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupeNotFound
		}
		return err
	}
	return s.repo.Groupe.Delete(ctx, id)
}

func (s *groupeService) AffecterEtudiant(ctx context.Context, groupeID, etudiantID string) error {
	groupe, err := s.repo.Groupe.GetByID(ctx, groupeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupeNotFound
		}
		return err
	}

	etudiant, err := s.repo.User.GetByID(ctx, etudiantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if etudiant.Role != model.RoleEtudiant {
		return ErrEtudiantSeulement
	}
	if etudiant.FormationID != groupe.FormationID {
		return ErrFormationMismatch
	}

	member, err := s.repo.GroupeEtudiant.Exists(ctx, etudiantID, groupeID)
	if err != nil {
		return err
	}
	if member {
		return ErrDejaDansGroupe
	}

	count, err := s.repo.GroupeEtudiant.CountByGroupe(ctx, groupeID)
	if err != nil {
		return err
	}
	if groupe.CapaciteMax > 0 && count >= int64(groupe.CapaciteMax) {
		return ErrGroupePlein
	}

	affectation := &model.GroupeEtudiant{
		EtudiantID: etudiantID,
		GroupeID:   groupeID,
	}
	if err := s.repo.GroupeEtudiant.Create(ctx, affectation); err != nil {
		return err
	}

	s.logger.Info("etudiant affected to groupe",
		zap.String("groupe_id", groupeID),
		zap.String("etudiant_id", etudiantID))
	return nil
}

func (s *groupeService) RetirerEtudiant(ctx context.Context, groupeID, etudiantID string) error {
	member, err := s.repo.GroupeEtudiant.Exists(ctx, etudiantID, groupeID)
	if err != nil {
		return err
	}
	if !member {
		return ErrPasDansGroupe
	}
	return s.repo.GroupeEtudiant.Delete(ctx, etudiantID, groupeID)
}

func (s *groupeService) ListEtudiants(ctx context.Context, groupeID string) ([]model.User, error) {
	if _, err := s.repo.Groupe.GetByID(ctx, groupeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupeNotFound
		}
		return nil, err
	}

	affectations, err := s.repo.GroupeEtudiant.ListByGroupe(ctx, groupeID)
	if err != nil {
		return nil, err
	}

	etudiants := make([]model.User, 0, len(affectations))
	for _, a := range affectations {
		if a.Etudiant != nil {
			etudiants = append(etudiants, *a.Etudiant)
		}
	}
	return etudiants, nil
}
