package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var (
	ErrAvertissementNotFound = errors.New("avertissement not found")
	ErrAvertissementExists   = errors.New("avertissement already exists for this etudiant and matiere")
)

// AvertissementService issues and manages absence warnings.
// A student gets at most one warning per matiere; once issued it is
// never re-evaluated as the absence count grows.
type AvertissementService interface {
	CheckSeuil(ctx context.Context, etudiantID, matiereID string) error
	Create(ctx context.Context, req *dto.CreateAvertissementRequest, createurID string) (*model.Avertissement, error)
	GetByID(ctx context.Context, id string) (*model.Avertissement, error)
	List(ctx context.Context) ([]model.Avertissement, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Avertissement, error)
	ListByMatiere(ctx context.Context, matiereID string) ([]model.Avertissement, error)
	ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Avertissement, error)
	ListByAutomatique(ctx context.Context, automatique bool) ([]model.Avertissement, error)
	UpdateMotif(ctx context.Context, id string, req *dto.UpdateMotifRequest) (*model.Avertissement, error)
	Delete(ctx context.Context, id string) error
}

type avertissementService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAvertissementService creates the warning service.
func NewAvertissementService(repo *repository.Repository, logger *zap.Logger, now func() time.Time) AvertissementService {
	return &avertissementService{repo: repo, logger: logger, now: now}
}

// CheckSeuil counts the student's absences in a matiere and issues an
// automatic warning when the threshold is crossed. Called after every
// recorded absence; a no-op when a warning already exists.
func (s *avertissementService) CheckSeuil(ctx context.Context, etudiantID, matiereID string) error {
	matiere, err := s.repo.Matiere.GetByID(ctx, matiereID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatiereNotFound
		}
		return err
	}

	count, err := s.repo.Presence.CountAbsences(ctx, etudiantID, matiereID)
	if err != nil {
		return err
	}
	if count < int64(matiere.SeuilAbsences) {
		return nil
	}

	exists, err := s.repo.Avertissement.ExistsByEtudiantAndMatiere(ctx, etudiantID, matiereID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	avertissement := &model.Avertissement{
		EtudiantID:        etudiantID,
		MatiereID:         matiereID,
		NombreAbsences:    int(count),
		Automatique:       true,
		DateAvertissement: s.now(),
		Motif: fmt.Sprintf("Avertissement automatique : %d absences en %s (seuil : %d)",
			count, matiere.Nom, matiere.SeuilAbsences),
	}
	if err := s.repo.Avertissement.Create(ctx, avertissement); err != nil {
		return err
	}

	s.logger.Info("avertissement automatique",
		zap.String("etudiant_id", etudiantID),
		zap.String("matiere_id", matiereID),
		zap.Int64("absences", count))
	return nil
}

// Create records a manual warning entered by staff. Skipped silently if
// the student already carries one for the matiere, mirroring CheckSeuil.
func (s *avertissementService) Create(ctx context.Context, req *dto.CreateAvertissementRequest, createurID string) (*model.Avertissement, error) {
	if _, err := s.repo.User.GetByID(ctx, req.EtudiantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Matiere.GetByID(ctx, req.MatiereID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatiereNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Avertissement.ExistsByEtudiantAndMatiere(ctx, req.EtudiantID, req.MatiereID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAvertissementExists
	}

	avertissement := &model.Avertissement{
		EtudiantID:        req.EtudiantID,
		MatiereID:         req.MatiereID,
		NombreAbsences:    req.NombreAbsences,
		Motif:             req.Motif,
		Automatique:       false,
		CreateurID:        &createurID,
		DateAvertissement: s.now(),
	}
	if err := s.repo.Avertissement.Create(ctx, avertissement); err != nil {
		return nil, err
	}

	s.logger.Info("avertissement manuel",
		zap.String("etudiant_id", req.EtudiantID),
		zap.String("createur_id", createurID))
	return avertissement, nil
}

func (s *avertissementService) GetByID(ctx context.Context, id string) (*model.Avertissement, error) {
	avertissement, err := s.repo.Avertissement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvertissementNotFound
		}
		return nil, err
	}
	return avertissement, nil
}

func (s *avertissementService) List(ctx context.Context) ([]model.Avertissement, error) {
	return s.repo.Avertissement.List(ctx)
}

func (s *avertissementService) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Avertissement, error) {
	return s.repo.Avertissement.ListByEtudiant(ctx, etudiantID)
}

func (s *avertissementService) ListByMatiere(ctx context.Context, matiereID string) ([]model.Avertissement, error) {
	return s.repo.Avertissement.ListByMatiere(ctx, matiereID)
}

func (s *avertissementService) ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Avertissement, error) {
	return s.repo.Avertissement.ListByEtudiantAndMatiere(ctx, etudiantID, matiereID)
}

func (s *avertissementService) ListByAutomatique(ctx context.Context, automatique bool) ([]model.Avertissement, error) {
	return s.repo.Avertissement.ListByAutomatique(ctx, automatique)
}

func (s *avertissementService) UpdateMotif(ctx context.Context, id string, req *dto.UpdateMotifRequest) (*model.Avertissement, error) {
	avertissement, err := s.repo.Avertissement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvertissementNotFound
		}
		return nil, err
	}

	avertissement.Motif = req.Motif
	if err := s.repo.Avertissement.Update(ctx, avertissement); err != nil {
		return nil, err
	}
	return avertissement, nil
}

func (s *avertissementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Avertissement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAvertissementNotFound
		}
		return err
	}
	return s.repo.Avertissement.Delete(ctx, id)
}
