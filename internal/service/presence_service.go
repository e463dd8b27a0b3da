package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var (
	ErrPresenceNotFound = errors.New("presence not found")
	ErrCodeExpire       = errors.New("code expired")
	ErrCodeIncorrect    = errors.New("incorrect code")
	ErrDejaValide       = errors.New("presence already recorded for this seance")
	ErrNonEligible      = errors.New("etudiant is not expected at this seance")
	ErrSeanceCloturee   = errors.New("seance ended, attendance can no longer be edited")
)

// PresenceService records attendance: student self-check-in against the
// rotating code, and manual entries by staff.
type PresenceService interface {
	ValidateCode(ctx context.Context, etudiantID string, req *dto.ValidateCodeRequest) (*model.Presence, error)
	Create(ctx context.Context, req *dto.CreatePresenceRequest) (*model.Presence, error)
	Update(ctx context.Context, id string, req *dto.UpdatePresenceRequest) (*model.Presence, error)
	GetByID(ctx context.Context, id string) (*model.Presence, error)
	ListBySeance(ctx context.Context, seanceID string) ([]model.Presence, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error)
	ListAbsencesNonJustifiees(ctx context.Context, etudiantID string) ([]model.Presence, error)
	CountAbsences(ctx context.Context, etudiantID, matiereID string) (int64, error)
	Statistiques(ctx context.Context, etudiantID string) (*dto.StatistiquesEtudiant, error)
	Delete(ctx context.Context, id string) error
}

type presenceService struct {
	repo          *repository.Repository
	avertissement AvertissementService
	logger        *zap.Logger
	now           func() time.Time
}

// NewPresenceService creates the attendance service.
func NewPresenceService(repo *repository.Repository, avertissement AvertissementService, logger *zap.Logger, now func() time.Time) PresenceService {
	return &presenceService{repo: repo, avertissement: avertissement, logger: logger, now: now}
}

// ValidateCode is the student check-in. The checks run in a fixed order
// so a client always gets the most specific rejection: session running,
// code fresh, code correct, caller eligible, no prior record.
func (s *presenceService) ValidateCode(ctx context.Context, etudiantID string, req *dto.ValidateCodeRequest) (*model.Presence, error) {
	seance, err := s.repo.Seance.GetByID(ctx, req.SeanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeanceNotFound
		}
		return nil, err
	}

	if seance.Statut != model.StatutSeanceEnCours || !seance.SeanceActive || seance.CodeDynamique == nil {
		return nil, ErrSeanceNotActive
	}
	if seance.CodeExpiration == nil || !s.now().Before(*seance.CodeExpiration) {
		return nil, ErrCodeExpire
	}
	if *seance.CodeDynamique != req.Code {
		return nil, ErrCodeIncorrect
	}

	etudiant, err := s.repo.User.GetByID(ctx, etudiantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if etudiant.Role != model.RoleEtudiant {
		return nil, ErrEtudiantSeulement
	}

	eligible, err := s.estEligible(ctx, seance, etudiant)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNonEligible
	}

	exists, err := s.repo.Presence.ExistsBySeanceAndEtudiant(ctx, seance.SeanceID, etudiantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDejaValide
	}

	validation := s.now()
	presence := &model.Presence{
		SeanceID:        seance.SeanceID,
		EtudiantID:      etudiantID,
		Statut:          model.StatutPresent,
		HeureValidation: &validation,
	}
	if err := s.repo.Presence.Create(ctx, presence); err != nil {
		return nil, err
	}

	s.logger.Info("presence validated",
		zap.String("seance_id", seance.SeanceID),
		zap.String("etudiant_id", etudiantID))
	return presence, nil
}

// Create is a manual attendance entry by staff. Rejected once the
// session's scheduled end has passed.
func (s *presenceService) Create(ctx context.Context, req *dto.CreatePresenceRequest) (*model.Presence, error) {
	seance, err := s.repo.Seance.GetByID(ctx, req.SeanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeanceNotFound
		}
		return nil, err
	}
	if seance.Statut == model.StatutSeanceAnnulee {
		return nil, ErrSeanceAnnulee
	}
	if s.now().After(seance.DateFin) {
		return nil, ErrSeanceCloturee
	}

	etudiant, err := s.repo.User.GetByID(ctx, req.EtudiantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if etudiant.Role != model.RoleEtudiant {
		return nil, ErrEtudiantSeulement
	}

	eligible, err := s.estEligible(ctx, seance, etudiant)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNonEligible
	}

	exists, err := s.repo.Presence.ExistsBySeanceAndEtudiant(ctx, seance.SeanceID, req.EtudiantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDejaValide
	}

	statut := model.StatutPresence(req.Statut)
	presence := &model.Presence{
		SeanceID:             seance.SeanceID,
		EtudiantID:           req.EtudiantID,
		Statut:               statut,
		ModificationManuelle: true,
		Commentaire:          req.Commentaire,
	}
	if statut != model.StatutAbsent {
		validation := s.now()
		presence.HeureValidation = &validation
	}

	if err := s.repo.Presence.Create(ctx, presence); err != nil {
		return nil, err
	}

	if statut == model.StatutAbsent {
		if err := s.avertissement.CheckSeuil(ctx, req.EtudiantID, seance.MatiereID); err != nil {
			s.logger.Warn("seuil check failed",
				zap.String("etudiant_id", req.EtudiantID),
				zap.Error(err))
		}
	}
	return presence, nil
}

// Update is a manual attendance edit by staff, under the same window as
// Create: nothing moves once the session's scheduled end has passed.
func (s *presenceService) Update(ctx context.Context, id string, req *dto.UpdatePresenceRequest) (*model.Presence, error) {
	presence, err := s.repo.Presence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresenceNotFound
		}
		return nil, err
	}

	seance := presence.Seance
	if seance == nil {
		seance, err = s.repo.Seance.GetByID(ctx, presence.SeanceID)
		if err != nil {
			return nil, err
		}
	}
	if s.now().After(seance.DateFin) {
		return nil, ErrSeanceCloturee
	}

	statut := model.StatutPresence(req.Statut)
	presence.Statut = statut
	presence.ModificationManuelle = true
	presence.Commentaire = req.Commentaire
	if statut == model.StatutAbsent {
		presence.HeureValidation = nil
	} else if presence.HeureValidation == nil {
		validation := s.now()
		presence.HeureValidation = &validation
	}

	if err := s.repo.Presence.Update(ctx, presence); err != nil {
		return nil, err
	}

	// every manual edit re-runs the threshold check, not just edits to
	// ABSENT: the seuil may have moved since the absences accrued
	if err := s.avertissement.CheckSeuil(ctx, presence.EtudiantID, seance.MatiereID); err != nil {
		s.logger.Warn("seuil check failed",
			zap.String("etudiant_id", presence.EtudiantID),
			zap.Error(err))
	}
	return presence, nil
}

func (s *presenceService) GetByID(ctx context.Context, id string) (*model.Presence, error) {
	presence, err := s.repo.Presence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresenceNotFound
		}
		return nil, err
	}
	return presence, nil
}

func (s *presenceService) ListBySeance(ctx context.Context, seanceID string) ([]model.Presence, error) {
	return s.repo.Presence.ListBySeance(ctx, seanceID)
}

func (s *presenceService) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error) {
	return s.repo.Presence.ListByEtudiant(ctx, etudiantID)
}

// ListAbsencesNonJustifiees returns the student's absences that no
// accepted justificatif covers.
func (s *presenceService) ListAbsencesNonJustifiees(ctx context.Context, etudiantID string) ([]model.Presence, error) {
	absences, err := s.repo.Presence.ListAbsencesByEtudiant(ctx, etudiantID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Presence, 0, len(absences))
	for _, a := range absences {
		justificatif, err := s.repo.Justificatif.GetByAbsence(ctx, a.PresenceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				out = append(out, a)
				continue
			}
			return nil, err
		}
		if justificatif.Statut != model.StatutJustificatifAccepte {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *presenceService) CountAbsences(ctx context.Context, etudiantID, matiereID string) (int64, error) {
	return s.repo.Presence.CountAbsences(ctx, etudiantID, matiereID)
}

func (s *presenceService) Statistiques(ctx context.Context, etudiantID string) (*dto.StatistiquesEtudiant, error) {
	etudiant, err := s.repo.User.GetByID(ctx, etudiantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	presents, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, etudiantID, model.StatutPresent)
	if err != nil {
		return nil, err
	}
	absents, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, etudiantID, model.StatutAbsent)
	if err != nil {
		return nil, err
	}
	retards, err := s.repo.Presence.CountByEtudiantAndStatut(ctx, etudiantID, model.StatutRetard)
	if err != nil {
		return nil, err
	}
	avertissements, err := s.repo.Avertissement.CountByEtudiant(ctx, etudiantID)
	if err != nil {
		return nil, err
	}

	total := presents + absents + retards
	stats := &dto.StatistiquesEtudiant{
		EtudiantID:           etudiantID,
		NomComplet:           etudiant.NomComplet(),
		TotalSeances:         total,
		TotalPresences:       presents,
		TotalAbsences:        absents,
		TotalRetards:         retards,
		NombreAvertissements: avertissements,
	}
	if total > 0 {
		stats.TauxAbsence = float64(absents) / float64(total) * 100
	}
	return stats, nil
}

func (s *presenceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Presence.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPresenceNotFound
		}
		return err
	}
	return s.repo.Presence.Delete(ctx, id)
}

// estEligible reports whether a student is expected at a session:
// formation match for CM, groupe membership for TD_TP.
func (s *presenceService) estEligible(ctx context.Context, seance *model.Seance, etudiant *model.User) (bool, error) {
	if seance.TypeSeance == model.TypeSeanceTDTP {
		if seance.GroupeID == nil {
			return false, nil
		}
		return s.repo.GroupeEtudiant.Exists(ctx, etudiant.UserID, *seance.GroupeID)
	}

	matiere := seance.Matiere
	if matiere == nil {
		var err error
		matiere, err = s.repo.Matiere.GetByID(ctx, seance.MatiereID)
		if err != nil {
			return false, err
		}
	}
	return etudiant.FormationID == matiere.FormationID, nil
}
