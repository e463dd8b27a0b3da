package service

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
	"github.com/triomphant75/Gestion-Absence/pkg/storage"
)

var (
	ErrJustificatifNotFound = errors.New("justificatif not found")
	ErrJustificatifExists   = errors.New("absence already has a justificatif")
	ErrPasUneAbsence        = errors.New("presence is not an absence")
	ErrPasSonAbsence        = errors.New("absence belongs to another etudiant")
	ErrDejaTraite           = errors.New("justificatif already processed")
)

// JustificatifService manages absence justification documents.
type JustificatifService interface {
	Deposer(ctx context.Context, etudiantID string, req *dto.DeposerJustificatifRequest, file *multipart.FileHeader) (*model.Justificatif, error)
	Traiter(ctx context.Context, id, validateurID string, accepte bool, req *dto.TraiterJustificatifRequest) (*model.Justificatif, error)
	GetByID(ctx context.Context, id string) (*model.Justificatif, error)
	FilePath(ctx context.Context, id string) (string, *model.Justificatif, error)
	List(ctx context.Context) ([]model.Justificatif, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Justificatif, error)
	ListEnAttente(ctx context.Context) ([]model.Justificatif, error)
	ListTraitesByValidateur(ctx context.Context, validateurID string) ([]model.Justificatif, error)
	Delete(ctx context.Context, id string) error
}

type justificatifService struct {
	repo    *repository.Repository
	storage *storage.Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewJustificatifService creates the justification service.
func NewJustificatifService(repo *repository.Repository, store *storage.Storage, logger *zap.Logger, now func() time.Time) JustificatifService {
	return &justificatifService{repo: repo, storage: store, logger: logger, now: now}
}

// Deposer files a justification for one of the caller's own absences.
func (s *justificatifService) Deposer(ctx context.Context, etudiantID string, req *dto.DeposerJustificatifRequest, file *multipart.FileHeader) (*model.Justificatif, error) {
	absence, err := s.repo.Presence.GetByID(ctx, req.AbsenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresenceNotFound
		}
		return nil, err
	}
	if absence.Statut != model.StatutAbsent {
		return nil, ErrPasUneAbsence
	}
	if absence.EtudiantID != etudiantID {
		return nil, ErrPasSonAbsence
	}

	exists, err := s.repo.Justificatif.ExistsByAbsence(ctx, req.AbsenceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrJustificatifExists
	}

	filename, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	justificatif := &model.Justificatif{
		EtudiantID:  etudiantID,
		AbsenceID:   req.AbsenceID,
		Motif:       req.Motif,
		FichierPath: filename,
		Statut:      model.StatutJustificatifEnAttente,
	}
	if err := s.repo.Justificatif.Create(ctx, justificatif); err != nil {
		// keep the store consistent with the table
		if rmErr := s.storage.Remove(filename); rmErr != nil {
			s.logger.Warn("orphan upload not removed", zap.String("file", filename), zap.Error(rmErr))
		}
		return nil, err
	}

	s.logger.Info("justificatif deposited",
		zap.String("justificatif_id", justificatif.JustificatifID),
		zap.String("etudiant_id", etudiantID))
	return justificatif, nil
}

// Traiter accepts or refuses a pending justification.
func (s *justificatifService) Traiter(ctx context.Context, id, validateurID string, accepte bool, req *dto.TraiterJustificatifRequest) (*model.Justificatif, error) {
	justificatif, err := s.repo.Justificatif.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJustificatifNotFound
		}
		return nil, err
	}
	if justificatif.Statut != model.StatutJustificatifEnAttente {
		return nil, ErrDejaTraite
	}

	if accepte {
		justificatif.Statut = model.StatutJustificatifAccepte
	} else {
		justificatif.Statut = model.StatutJustificatifRefuse
	}
	justificatif.ValidateurID = &validateurID
	justificatif.CommentaireValidation = req.Commentaire
	validation := s.now()
	justificatif.DateValidation = &validation

	if err := s.repo.Justificatif.Update(ctx, justificatif); err != nil {
		return nil, err
	}

	s.logger.Info("justificatif processed",
		zap.String("justificatif_id", justificatif.JustificatifID),
		zap.String("statut", string(justificatif.Statut)))
	return justificatif, nil
}

func (s *justificatifService) GetByID(ctx context.Context, id string) (*model.Justificatif, error) {
	justificatif, err := s.repo.Justificatif.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJustificatifNotFound
		}
		return nil, err
	}
	return justificatif, nil
}

// FilePath resolves the stored document for download.
func (s *justificatifService) FilePath(ctx context.Context, id string) (string, *model.Justificatif, error) {
	justificatif, err := s.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return s.storage.FilePath(justificatif.FichierPath), justificatif, nil
}

func (s *justificatifService) List(ctx context.Context) ([]model.Justificatif, error) {
	return s.repo.Justificatif.List(ctx)
}

func (s *justificatifService) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Justificatif, error) {
	return s.repo.Justificatif.ListByEtudiant(ctx, etudiantID)
}

func (s *justificatifService) ListEnAttente(ctx context.Context) ([]model.Justificatif, error) {
	return s.repo.Justificatif.ListByStatut(ctx, model.StatutJustificatifEnAttente)
}

func (s *justificatifService) ListTraitesByValidateur(ctx context.Context, validateurID string) ([]model.Justificatif, error) {
	return s.repo.Justificatif.ListByValidateur(ctx, validateurID)
}

func (s *justificatifService) Delete(ctx context.Context, id string) error {
	justificatif, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Justificatif.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Remove(justificatif.FichierPath); err != nil {
		s.logger.Warn("stored file not removed", zap.String("file", justificatif.FichierPath), zap.Error(err))
	}
	return nil
}
