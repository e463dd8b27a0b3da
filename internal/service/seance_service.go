package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var (
	ErrSeanceNotFound     = errors.New("seance not found")
	ErrSeanceNotActive    = errors.New("seance is not running")
	ErrSeanceDejaDemarree = errors.New("seance already started")
	ErrSeanceTerminee     = errors.New("seance already finished")
	ErrSeanceAnnulee      = errors.New("seance is cancelled")
	ErrSeanceEnCours      = errors.New("seance is running")
	ErrGroupeRequis       = errors.New("TD_TP seance needs a groupe")
	ErrGroupeInterdit     = errors.New("CM seance cannot have a groupe")
	ErrPeriodeInvalide    = errors.New("date_fin must be after date_debut")
	ErrPasProprietaire    = errors.New("seance belongs to another enseignant")
)

const (
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength    = 6
	codeValiditee = 30 * time.Second
)

// SeanceService drives the session lifecycle: schedule, reschedule,
// start with a rotating check-in code, stop with absence backfill, cancel.
type SeanceService interface {
	Create(ctx context.Context, req *dto.CreateSeanceRequest) (*model.Seance, error)
	GetByID(ctx context.Context, id string) (*model.Seance, error)
	List(ctx context.Context) ([]model.Seance, error)
	ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error)
	ListByMatiere(ctx context.Context, matiereID string) ([]model.Seance, error)
	ListByGroupe(ctx context.Context, groupeID string) ([]model.Seance, error)
	ListUpcomingByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error)
	Update(ctx context.Context, id string, req *dto.UpdateSeanceRequest) (*model.Seance, error)
	Delete(ctx context.Context, id string) error

	Start(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error)
	Stop(ctx context.Context, id, enseignantID string) error
	Cancel(ctx context.Context, id string) error
	RenewCode(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error)
	CurrentCode(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error)
	Roster(ctx context.Context, id string) (*dto.RosterResponse, error)
}

type seanceService struct {
	repo          *repository.Repository
	avertissement AvertissementService
	logger        *zap.Logger
	now           func() time.Time
}

// NewSeanceService creates the session service.
func NewSeanceService(repo *repository.Repository, avertissement AvertissementService, logger *zap.Logger, now func() time.Time) SeanceService {
	return &seanceService{repo: repo, avertissement: avertissement, logger: logger, now: now}
}

func (s *seanceService) Create(ctx context.Context, req *dto.CreateSeanceRequest) (*model.Seance, error) {
	if !req.DateFin.After(req.DateDebut) {
		return nil, ErrPeriodeInvalide
	}

	typeSeance := model.TypeSeance(req.TypeSeance)
	if typeSeance == model.TypeSeanceTDTP && req.GroupeID == nil {
		return nil, ErrGroupeRequis
	}
	if typeSeance == model.TypeSeanceCM && req.GroupeID != nil {
		return nil, ErrGroupeInterdit
	}

	matiere, err := s.repo.Matiere.GetByID(ctx, req.MatiereID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatiereNotFound
		}
		return nil, err
	}

	enseignant, err := s.repo.User.GetByID(ctx, req.EnseignantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if enseignant.Role != model.RoleEnseignant && enseignant.Role != model.RoleChefDepartement {
		return nil, ErrUserNotFound
	}

	if req.GroupeID != nil {
		groupe, err := s.repo.Groupe.GetByID(ctx, *req.GroupeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGroupeNotFound
			}
			return nil, err
		}
		if groupe.FormationID != matiere.FormationID {
			return nil, ErrFormationMismatch
		}
	}

	seance := &model.Seance{
		MatiereID:    req.MatiereID,
		EnseignantID: req.EnseignantID,
		GroupeID:     req.GroupeID,
		TypeSeance:   typeSeance,
		Statut:       model.StatutSeancePrevue,
		DateDebut:    req.DateDebut,
		DateFin:      req.DateFin,
		Salle:        req.Salle,
		Commentaire:  req.Commentaire,
	}
	if err := s.repo.Seance.Create(ctx, seance); err != nil {
		return nil, err
	}

	s.logger.Info("seance created",
		zap.String("seance_id", seance.SeanceID),
		zap.String("matiere_id", seance.MatiereID))
	return seance, nil
}

func (s *seanceService) GetByID(ctx context.Context, id string) (*model.Seance, error) {
	return s.getSeance(ctx, id)
}

func (s *seanceService) List(ctx context.Context) ([]model.Seance, error) {
	return s.repo.Seance.List(ctx)
}

func (s *seanceService) ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error) {
	return s.repo.Seance.ListByEnseignant(ctx, enseignantID)
}

func (s *seanceService) ListByMatiere(ctx context.Context, matiereID string) ([]model.Seance, error) {
	return s.repo.Seance.ListByMatiere(ctx, matiereID)
}

func (s *seanceService) ListByGroupe(ctx context.Context, groupeID string) ([]model.Seance, error) {
	return s.repo.Seance.ListByGroupe(ctx, groupeID)
}

func (s *seanceService) ListUpcomingByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error) {
	return s.repo.Seance.ListUpcomingByEnseignant(ctx, enseignantID, s.now())
}

// Update reschedules a session. Only PREVUE and REPORTEE sessions can
// move; the session ends up REPORTEE so clients can surface the change.
func (s *seanceService) Update(ctx context.Context, id string, req *dto.UpdateSeanceRequest) (*model.Seance, error) {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireEditable(seance); err != nil {
		return nil, err
	}

	if !req.DateFin.After(req.DateDebut) {
		return nil, ErrPeriodeInvalide
	}

	typeSeance := model.TypeSeance(req.TypeSeance)
	if typeSeance == model.TypeSeanceTDTP && req.GroupeID == nil {
		return nil, ErrGroupeRequis
	}
	if typeSeance == model.TypeSeanceCM && req.GroupeID != nil {
		return nil, ErrGroupeInterdit
	}

	seance.MatiereID = req.MatiereID
	seance.EnseignantID = req.EnseignantID
	seance.GroupeID = req.GroupeID
	seance.TypeSeance = typeSeance
	seance.DateDebut = req.DateDebut
	seance.DateFin = req.DateFin
	seance.Salle = req.Salle
	seance.Commentaire = req.Commentaire
	seance.Statut = model.StatutSeanceReportee

	if err := s.repo.Seance.Update(ctx, seance); err != nil {
		return nil, err
	}
	return seance, nil
}

// Delete removes a session that never ran. A running session must be
// stopped or cancelled first.
func (s *seanceService) Delete(ctx context.Context, id string) error {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return err
	}
	if seance.Statut == model.StatutSeanceEnCours {
		return ErrSeanceEnCours
	}
	return s.repo.Seance.Delete(ctx, id)
}

// Start moves a session to EN_COURS and issues the first check-in code.
func (s *seanceService) Start(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error) {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return nil, err
	}
	if seance.EnseignantID != enseignantID {
		return nil, ErrPasProprietaire
	}

	switch seance.Statut {
	case model.StatutSeancePrevue, model.StatutSeanceReportee:
	case model.StatutSeanceEnCours:
		return nil, ErrSeanceDejaDemarree
	case model.StatutSeanceTerminee:
		return nil, ErrSeanceTerminee
	case model.StatutSeanceAnnulee:
		return nil, ErrSeanceAnnulee
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	expiration := s.now().Add(codeValiditee)

	seance.Statut = model.StatutSeanceEnCours
	seance.SeanceActive = true
	seance.CodeDynamique = &code
	seance.CodeExpiration = &expiration

	if err := s.repo.Seance.Update(ctx, seance); err != nil {
		return nil, err
	}

	s.logger.Info("seance started", zap.String("seance_id", seance.SeanceID))
	return &dto.CodeResponse{Code: code, ExpireAt: expiration}, nil
}

// Stop moves a running session to TERMINEE, clears the code and records
// an ABSENT row for every eligible student who never checked in.
func (s *seanceService) Stop(ctx context.Context, id, enseignantID string) error {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return err
	}
	if seance.EnseignantID != enseignantID {
		return ErrPasProprietaire
	}
	if seance.Statut != model.StatutSeanceEnCours {
		return ErrSeanceNotActive
	}

	seance.Statut = model.StatutSeanceTerminee
	seance.SeanceActive = false
	seance.Terminee = true
	seance.CodeDynamique = nil
	seance.CodeExpiration = nil

	if err := s.repo.Seance.Update(ctx, seance); err != nil {
		return err
	}

	if err := s.backfillAbsences(ctx, seance); err != nil {
		return err
	}

	s.logger.Info("seance stopped", zap.String("seance_id", seance.SeanceID))
	return nil
}

// Cancel voids any session that has not finished. A running session is
// cancelled in place without the absence backfill a Stop would do.
func (s *seanceService) Cancel(ctx context.Context, id string) error {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return err
	}

	switch seance.Statut {
	case model.StatutSeanceTerminee:
		return ErrSeanceTerminee
	case model.StatutSeanceAnnulee:
		return ErrSeanceAnnulee
	}

	seance.Statut = model.StatutSeanceAnnulee
	seance.Annulee = true
	seance.SeanceActive = false
	seance.CodeDynamique = nil
	seance.CodeExpiration = nil

	if err := s.repo.Seance.Update(ctx, seance); err != nil {
		return err
	}

	s.logger.Info("seance cancelled", zap.String("seance_id", seance.SeanceID))
	return nil
}

// RenewCode replaces the check-in code of a running session.
func (s *seanceService) RenewCode(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error) {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return nil, err
	}
	if seance.EnseignantID != enseignantID {
		return nil, ErrPasProprietaire
	}
	if seance.Statut != model.StatutSeanceEnCours || !seance.SeanceActive {
		return nil, ErrSeanceNotActive
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	expiration := s.now().Add(codeValiditee)

	seance.CodeDynamique = &code
	seance.CodeExpiration = &expiration

	if err := s.repo.Seance.Update(ctx, seance); err != nil {
		return nil, err
	}
	return &dto.CodeResponse{Code: code, ExpireAt: expiration}, nil
}

// CurrentCode returns the code a presenting client should display,
// renewing it when the previous one expired. Clients poll this endpoint.
func (s *seanceService) CurrentCode(ctx context.Context, id, enseignantID string) (*dto.CodeResponse, error) {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return nil, err
	}
	if seance.EnseignantID != enseignantID {
		return nil, ErrPasProprietaire
	}
	if seance.Statut != model.StatutSeanceEnCours || !seance.SeanceActive {
		return nil, ErrSeanceNotActive
	}

	if seance.CodeDynamique != nil && seance.CodeExpiration != nil && s.now().Before(*seance.CodeExpiration) {
		return &dto.CodeResponse{Code: *seance.CodeDynamique, ExpireAt: *seance.CodeExpiration}, nil
	}
	return s.RenewCode(ctx, id, enseignantID)
}

// Roster lists the students expected at a session: the whole formation
// cohort for CM, the groupe members for TD_TP.
func (s *seanceService) Roster(ctx context.Context, id string) (*dto.RosterResponse, error) {
	seance, err := s.getSeance(ctx, id)
	if err != nil {
		return nil, err
	}

	etudiants, err := s.rosterEtudiants(ctx, seance)
	if err != nil {
		return nil, err
	}

	inscrits := make([]dto.EtudiantInscrit, 0, len(etudiants))
	for _, e := range etudiants {
		inscrits = append(inscrits, dto.EtudiantInscrit{
			UserID:         e.UserID,
			Nom:            e.Nom,
			Prenom:         e.Prenom,
			NumeroEtudiant: e.NumeroEtudiant,
			Email:          e.Email,
		})
	}

	return &dto.RosterResponse{
		SeanceID:  seance.SeanceID,
		Etudiants: inscrits,
		Total:     len(inscrits),
	}, nil
}

func (s *seanceService) getSeance(ctx context.Context, id string) (*model.Seance, error) {
	seance, err := s.repo.Seance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeanceNotFound
		}
		return nil, err
	}
	return seance, nil
}

func (s *seanceService) requireEditable(seance *model.Seance) error {
	switch seance.Statut {
	case model.StatutSeanceEnCours:
		return ErrSeanceEnCours
	case model.StatutSeanceTerminee:
		return ErrSeanceTerminee
	case model.StatutSeanceAnnulee:
		return ErrSeanceAnnulee
	}
	return nil
}

func (s *seanceService) rosterEtudiants(ctx context.Context, seance *model.Seance) ([]model.User, error) {
	if seance.TypeSeance == model.TypeSeanceTDTP {
		if seance.GroupeID == nil {
			return nil, ErrGroupeRequis
		}
		affectations, err := s.repo.GroupeEtudiant.ListByGroupe(ctx, *seance.GroupeID)
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

	matiere := seance.Matiere
	if matiere == nil {
		var err error
		matiere, err = s.repo.Matiere.GetByID(ctx, seance.MatiereID)
		if err != nil {
			return nil, err
		}
	}
	return s.repo.User.ListByFormationAndRole(ctx, matiere.FormationID, model.RoleEtudiant)
}

func (s *seanceService) backfillAbsences(ctx context.Context, seance *model.Seance) error {
	etudiants, err := s.rosterEtudiants(ctx, seance)
	if err != nil {
		return err
	}

	for _, e := range etudiants {
		exists, err := s.repo.Presence.ExistsBySeanceAndEtudiant(ctx, seance.SeanceID, e.UserID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		absence := &model.Presence{
			SeanceID:   seance.SeanceID,
			EtudiantID: e.UserID,
			Statut:     model.StatutAbsent,
		}
		if err := s.repo.Presence.Create(ctx, absence); err != nil {
			return err
		}

		if err := s.avertissement.CheckSeuil(ctx, e.UserID, seance.MatiereID); err != nil {
			s.logger.Warn("seuil check failed",
				zap.String("etudiant_id", e.UserID),
				zap.Error(err))
		}
	}
	return nil
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
