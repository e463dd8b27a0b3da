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

var ErrHorsDepartement = errors.New("formation is outside the chef's departement")

// ChefDepartementService gives a department head a scoped view of the
// students in their own departement.
type ChefDepartementService interface {
	Etudiants(ctx context.Context, departementID string) ([]dto.EtudiantResume, error)
	EtudiantsByFormation(ctx context.Context, departementID, formationID string) ([]dto.EtudiantResume, error)
}

type chefDepartementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChefDepartementService creates the department-head service.
func NewChefDepartementService(repo *repository.Repository, logger *zap.Logger) ChefDepartementService {
	return &chefDepartementService{repo: repo, logger: logger}
}

// Etudiants lists every student across the departement's formations with
// an attendance summary per row.
func (s *chefDepartementService) Etudiants(ctx context.Context, departementID string) ([]dto.EtudiantResume, error) {
	formations, err := s.repo.Formation.ListByDepartement(ctx, departementID)
	if err != nil {
		return nil, err
	}

	resumes := make([]dto.EtudiantResume, 0)
	for _, f := range formations {
		rows, err := s.etudiantsOfFormation(ctx, &f)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, rows...)
	}
	return resumes, nil
}

// EtudiantsByFormation narrows the view to one formation, which must
// belong to the chef's own departement.
func (s *chefDepartementService) EtudiantsByFormation(ctx context.Context, departementID, formationID string) ([]dto.EtudiantResume, error) {
	formation, err := s.repo.Formation.GetByID(ctx, formationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	if formation.DepartementID != departementID {
		return nil, ErrHorsDepartement
	}
	return s.etudiantsOfFormation(ctx, formation)
}

func (s *chefDepartementService) etudiantsOfFormation(ctx context.Context, formation *model.Formation) ([]dto.EtudiantResume, error) {
	etudiants, err := s.repo.User.ListByFormationAndRole(ctx, formation.FormationID, model.RoleEtudiant)
	if err != nil {
		return nil, err
	}

	resumes := make([]dto.EtudiantResume, 0, len(etudiants))
	for _, e := range etudiants {
		presents, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, e.UserID, model.StatutPresent)
		if err != nil {
			return nil, err
		}
		absents, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, e.UserID, model.StatutAbsent)
		if err != nil {
			return nil, err
		}
		retards, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, e.UserID, model.StatutRetard)
		if err != nil {
			return nil, err
		}

		resume := dto.EtudiantResume{
			UserID:         e.UserID,
			NomComplet:     e.NomComplet(),
			NumeroEtudiant: e.NumeroEtudiant,
			Email:          e.Email,
			FormationID:    formation.FormationID,
			FormationNom:   formation.Nom,
			TotalAbsences:  absents,
		}
		if total := presents + absents + retards; total > 0 {
			resume.TauxAbsence = float64(absents) / float64(total) * 100
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}
