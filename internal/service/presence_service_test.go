package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
)

func setupTestPresenceService() (PresenceService, *testRepos, *time.Time) {
	repos := newTestRepos()
	clock := testClock
	now := func() time.Time { return clock }
	avertissementSvc := NewAvertissementService(repos.repo, zap.NewNop(), now)
	svc := NewPresenceService(repos.repo, avertissementSvc, zap.NewNop(), now)
	return svc, repos, &clock
}

func createTestEtudiant(repos *testRepos, formationID string) *model.User {
	return repos.users.add(&model.User{
		Nom:            "Durand",
		Prenom:         "Paul",
		Email:          "paul.durand@etu.univ.fr",
		Role:           model.RoleEtudiant,
		Actif:          true,
		NumeroEtudiant: "E2025001",
		FormationID:    formationID,
	})
}

func createRunningSeance(repos *testRepos, matiere *model.Matiere, code string) *model.Seance {
	expiration := testClock.Add(codeValiditee)
	seance := &model.Seance{
		MatiereID:      matiere.MatiereID,
		EnseignantID:   matiere.EnseignantID,
		TypeSeance:     model.TypeSeanceCM,
		Statut:         model.StatutSeanceEnCours,
		SeanceActive:   true,
		CodeDynamique:  &code,
		CodeExpiration: &expiration,
		DateDebut:      testClock.Add(-time.Hour),
		DateFin:        testClock.Add(time.Hour),
	}
	_ = repos.seances.Create(context.Background(), seance)
	return seance
}

func TestValidateCode_Success(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createRunningSeance(repos, matiere, "ABC123")

	presence, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if err != nil {
		t.Fatalf("ValidateCode failed: %v", err)
	}
	if presence.Statut != model.StatutPresent {
		t.Errorf("expected PRESENT, got %s", presence.Statut)
	}
	if presence.HeureValidation == nil {
		t.Error("expected a validation time")
	}
	if presence.ModificationManuelle {
		t.Error("check-in must not be flagged as a manual edit")
	}
}

func TestValidateCode_SeanceNotActive(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeancePrevue)

	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if !errors.Is(err, ErrSeanceNotActive) {
		t.Errorf("expected ErrSeanceNotActive, got %v", err)
	}
}

func TestValidateCode_Expired(t *testing.T) {
	svc, repos, clock := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createRunningSeance(repos, matiere, "ABC123")

	*clock = clock.Add(31 * time.Second)
	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if !errors.Is(err, ErrCodeExpire) {
		t.Errorf("expected ErrCodeExpire, got %v", err)
	}
}

func TestValidateCode_WrongCode(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createRunningSeance(repos, matiere, "ABC123")

	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "XYZ789",
	})
	if !errors.Is(err, ErrCodeIncorrect) {
		t.Errorf("expected ErrCodeIncorrect, got %v", err)
	}
}

func TestValidateCode_Duplicate(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createRunningSeance(repos, matiere, "ABC123")

	if _, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	}); err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}

	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if !errors.Is(err, ErrDejaValide) {
		t.Errorf("expected ErrDejaValide, got %v", err)
	}
}

func TestValidateCode_WrongFormation(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, "autre-formation")
	seance := createRunningSeance(repos, matiere, "ABC123")

	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if !errors.Is(err, ErrNonEligible) {
		t.Errorf("expected ErrNonEligible, got %v", err)
	}
}

func TestValidateCode_TDTPRequiresMembership(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	groupe := &model.Groupe{Nom: "G1", FormationID: matiere.FormationID}
	_ = repos.groupes.Create(context.Background(), groupe)

	code := "ABC123"
	expiration := testClock.Add(codeValiditee)
	seance := &model.Seance{
		MatiereID:      matiere.MatiereID,
		EnseignantID:   enseignant.UserID,
		GroupeID:       &groupe.GroupeID,
		TypeSeance:     model.TypeSeanceTDTP,
		Statut:         model.StatutSeanceEnCours,
		SeanceActive:   true,
		CodeDynamique:  &code,
		CodeExpiration: &expiration,
		DateDebut:      testClock.Add(-time.Hour),
		DateFin:        testClock.Add(time.Hour),
	}
	_ = repos.seances.Create(context.Background(), seance)

	_, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	})
	if !errors.Is(err, ErrNonEligible) {
		t.Errorf("expected ErrNonEligible for a non-member, got %v", err)
	}

	_ = repos.groupeEtudiant.Create(context.Background(), &model.GroupeEtudiant{
		GroupeID:   groupe.GroupeID,
		EtudiantID: etudiant.UserID,
	})
	if _, err := svc.ValidateCode(context.Background(), etudiant.UserID, &dto.ValidateCodeRequest{
		SeanceID: seance.SeanceID,
		Code:     "ABC123",
	}); err != nil {
		t.Errorf("member check-in failed: %v", err)
	}
}

func TestCreatePresence_Manual(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceEnCours)

	presence, err := svc.Create(context.Background(), &dto.CreatePresenceRequest{
		SeanceID:   seance.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     "RETARD",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !presence.ModificationManuelle {
		t.Error("manual entry must be flagged")
	}
	if presence.HeureValidation == nil {
		t.Error("RETARD should carry a validation time")
	}
}

func TestCreatePresence_AfterDateFin(t *testing.T) {
	svc, repos, clock := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)

	*clock = seance.DateFin.Add(time.Minute)
	_, err := svc.Create(context.Background(), &dto.CreatePresenceRequest{
		SeanceID:   seance.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     "PRESENT",
	})
	if !errors.Is(err, ErrSeanceCloturee) {
		t.Errorf("expected ErrSeanceCloturee, got %v", err)
	}
}

func TestCreatePresence_AbsentTriggersAvertissement(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	matiere.SeuilAbsences = 2
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	first := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)
	_ = repos.presences.Create(context.Background(), &model.Presence{
		SeanceID:   first.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     model.StatutAbsent,
	})

	second := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceEnCours)
	if _, err := svc.Create(context.Background(), &dto.CreatePresenceRequest{
		SeanceID:   second.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     "ABSENT",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, _ := repos.avertissements.ExistsByEtudiantAndMatiere(context.Background(), etudiant.UserID, matiere.MatiereID)
	if !exists {
		t.Error("expected an automatic avertissement at the threshold")
	}
}

func TestUpdatePresence_AbsentClearsValidation(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceEnCours)

	validation := testClock
	presence := &model.Presence{
		SeanceID:        seance.SeanceID,
		EtudiantID:      etudiant.UserID,
		Statut:          model.StatutPresent,
		HeureValidation: &validation,
	}
	_ = repos.presences.Create(context.Background(), presence)

	updated, err := svc.Update(context.Background(), presence.PresenceID, &dto.UpdatePresenceRequest{
		Statut: "ABSENT",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Statut != model.StatutAbsent {
		t.Errorf("expected ABSENT, got %s", updated.Statut)
	}
	if updated.HeureValidation != nil {
		t.Error("ABSENT must clear the validation time")
	}
	if !updated.ModificationManuelle {
		t.Error("manual edit must be flagged")
	}
}

func TestUpdatePresence_ChecksSeuilOnEveryEdit(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	matiere.SeuilAbsences = 2
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	// two absences already on record, no avertissement yet
	for i := 0; i < 2; i++ {
		past := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)
		_ = repos.presences.Create(context.Background(), &model.Presence{
			SeanceID:   past.SeanceID,
			EtudiantID: etudiant.UserID,
			Statut:     model.StatutAbsent,
		})
	}

	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceEnCours)
	presence := &model.Presence{
		SeanceID:   seance.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     model.StatutPresent,
	}
	_ = repos.presences.Create(context.Background(), presence)

	if _, err := svc.Update(context.Background(), presence.PresenceID, &dto.UpdatePresenceRequest{
		Statut: "RETARD",
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	exists, _ := repos.avertissements.ExistsByEtudiantAndMatiere(context.Background(), etudiant.UserID, matiere.MatiereID)
	if !exists {
		t.Error("expected the edit to trigger the threshold check even without a new absence")
	}
}

func TestUpdatePresence_AfterDateFin(t *testing.T) {
	svc, repos, clock := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)

	presence := &model.Presence{
		SeanceID:   seance.SeanceID,
		EtudiantID: etudiant.UserID,
		Statut:     model.StatutAbsent,
	}
	_ = repos.presences.Create(context.Background(), presence)

	*clock = seance.DateFin.Add(time.Minute)
	_, err := svc.Update(context.Background(), presence.PresenceID, &dto.UpdatePresenceRequest{
		Statut: "PRESENT",
	})
	if !errors.Is(err, ErrSeanceCloturee) {
		t.Errorf("expected ErrSeanceCloturee, got %v", err)
	}
}

func TestListAbsencesNonJustifiees(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	justified := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)
	pending := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)
	bare := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)

	covered := &model.Presence{SeanceID: justified.SeanceID, EtudiantID: etudiant.UserID, Statut: model.StatutAbsent}
	inReview := &model.Presence{SeanceID: pending.SeanceID, EtudiantID: etudiant.UserID, Statut: model.StatutAbsent}
	naked := &model.Presence{SeanceID: bare.SeanceID, EtudiantID: etudiant.UserID, Statut: model.StatutAbsent}
	for _, p := range []*model.Presence{covered, inReview, naked} {
		_ = repos.presences.Create(context.Background(), p)
	}

	_ = repos.justificatifs.Create(context.Background(), &model.Justificatif{
		EtudiantID: etudiant.UserID, AbsenceID: covered.PresenceID,
		FichierPath: "a.pdf", Statut: model.StatutJustificatifAccepte,
	})
	_ = repos.justificatifs.Create(context.Background(), &model.Justificatif{
		EtudiantID: etudiant.UserID, AbsenceID: inReview.PresenceID,
		FichierPath: "b.pdf", Statut: model.StatutJustificatifEnAttente,
	})

	out, err := svc.ListAbsencesNonJustifiees(context.Background(), etudiant.UserID)
	if err != nil {
		t.Fatalf("ListAbsencesNonJustifiees failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 unjustified absences, got %d", len(out))
	}
	for _, p := range out {
		if p.PresenceID == covered.PresenceID {
			t.Error("an absence with an accepted justificatif was returned")
		}
	}
}

func TestStatistiques(t *testing.T) {
	svc, repos, _ := setupTestPresenceService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	statuts := []model.StatutPresence{
		model.StatutPresent, model.StatutPresent, model.StatutAbsent, model.StatutRetard,
	}
	for _, statut := range statuts {
		seance := createTestSeance(repos, matiere, enseignant.UserID, model.StatutSeanceTerminee)
		_ = repos.presences.Create(context.Background(), &model.Presence{
			SeanceID:   seance.SeanceID,
			EtudiantID: etudiant.UserID,
			Statut:     statut,
		})
	}

	stats, err := svc.Statistiques(context.Background(), etudiant.UserID)
	if err != nil {
		t.Fatalf("Statistiques failed: %v", err)
	}
	if stats.TotalSeances != 4 || stats.TotalPresences != 2 || stats.TotalAbsences != 1 || stats.TotalRetards != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.TauxAbsence != 25 {
		t.Errorf("expected taux 25, got %f", stats.TauxAbsence)
	}
}
