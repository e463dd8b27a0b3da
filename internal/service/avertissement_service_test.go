package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
)

func setupTestAvertissementService() (AvertissementService, *testRepos) {
	repos := newTestRepos()
	now := func() time.Time { return testClock }
	svc := NewAvertissementService(repos.repo, zap.NewNop(), now)
	return svc, repos
}

func recordAbsences(repos *testRepos, matiere *model.Matiere, etudiantID string, count int) {
	for i := 0; i < count; i++ {
		seance := &model.Seance{
			MatiereID:    matiere.MatiereID,
			EnseignantID: matiere.EnseignantID,
			TypeSeance:   model.TypeSeanceCM,
			Statut:       model.StatutSeanceTerminee,
			DateDebut:    testClock.Add(time.Duration(-i-2) * time.Hour),
			DateFin:      testClock.Add(time.Duration(-i-1) * time.Hour),
		}
		_ = repos.seances.Create(context.Background(), seance)
		_ = repos.presences.Create(context.Background(), &model.Presence{
			SeanceID:   seance.SeanceID,
			EtudiantID: etudiantID,
			Statut:     model.StatutAbsent,
		})
	}
}

func TestCheckSeuil_BelowThreshold(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	recordAbsences(repos, matiere, etudiant.UserID, 2)

	if err := svc.CheckSeuil(context.Background(), etudiant.UserID, matiere.MatiereID); err != nil {
		t.Fatalf("CheckSeuil failed: %v", err)
	}
	exists, _ := repos.avertissements.ExistsByEtudiantAndMatiere(context.Background(), etudiant.UserID, matiere.MatiereID)
	if exists {
		t.Error("no avertissement expected below the threshold")
	}
}

func TestCheckSeuil_AtThreshold(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	recordAbsences(repos, matiere, etudiant.UserID, 3)

	if err := svc.CheckSeuil(context.Background(), etudiant.UserID, matiere.MatiereID); err != nil {
		t.Fatalf("CheckSeuil failed: %v", err)
	}

	list, _ := repos.avertissements.ListByEtudiant(context.Background(), etudiant.UserID)
	if len(list) != 1 {
		t.Fatalf("expected 1 avertissement, got %d", len(list))
	}
	a := list[0]
	if !a.Automatique {
		t.Error("threshold avertissement must be automatique")
	}
	if a.NombreAbsences != 3 {
		t.Errorf("expected 3 recorded absences, got %d", a.NombreAbsences)
	}
	expectedMotif := fmt.Sprintf("Avertissement automatique : 3 absences en %s (seuil : 3)", matiere.Nom)
	if a.Motif != expectedMotif {
		t.Errorf("unexpected motif: %q", a.Motif)
	}
	if a.CreateurID != nil {
		t.Error("automatic avertissement has no createur")
	}
}

func TestCheckSeuil_Idempotent(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	recordAbsences(repos, matiere, etudiant.UserID, 4)

	for i := 0; i < 3; i++ {
		if err := svc.CheckSeuil(context.Background(), etudiant.UserID, matiere.MatiereID); err != nil {
			t.Fatalf("CheckSeuil failed: %v", err)
		}
	}

	list, _ := repos.avertissements.ListByEtudiant(context.Background(), etudiant.UserID)
	if len(list) != 1 {
		t.Errorf("expected exactly 1 avertissement, got %d", len(list))
	}
}

func TestCheckSeuil_MatiereNotFound(t *testing.T) {
	svc, _ := setupTestAvertissementService()

	err := svc.CheckSeuil(context.Background(), "etudiant-1", "missing-matiere")
	if !errors.Is(err, ErrMatiereNotFound) {
		t.Errorf("expected ErrMatiereNotFound, got %v", err)
	}
}

func TestCreateAvertissement_Manual(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	a, err := svc.Create(context.Background(), &dto.CreateAvertissementRequest{
		EtudiantID:     etudiant.UserID,
		MatiereID:      matiere.MatiereID,
		NombreAbsences: 2,
		Motif:          "Absences repetees sans justification",
	}, enseignant.UserID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.Automatique {
		t.Error("manual avertissement must not be automatique")
	}
	if a.CreateurID == nil || *a.CreateurID != enseignant.UserID {
		t.Error("expected the createur to be recorded")
	}
}

func TestCreateAvertissement_Duplicate(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	req := &dto.CreateAvertissementRequest{
		EtudiantID:     etudiant.UserID,
		MatiereID:      matiere.MatiereID,
		NombreAbsences: 2,
		Motif:          "Absences repetees",
	}
	if _, err := svc.Create(context.Background(), req, enseignant.UserID); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), req, enseignant.UserID)
	if !errors.Is(err, ErrAvertissementExists) {
		t.Errorf("expected ErrAvertissementExists, got %v", err)
	}
}

func TestListAvertissements_Filters(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)
	autre := createTestEtudiant(repos, matiere.FormationID)

	if _, err := svc.Create(context.Background(), &dto.CreateAvertissementRequest{
		EtudiantID:     etudiant.UserID,
		MatiereID:      matiere.MatiereID,
		NombreAbsences: 2,
		Motif:          "Absences repetees",
	}, enseignant.UserID); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	recordAbsences(repos, matiere, autre.UserID, 3)
	if err := svc.CheckSeuil(context.Background(), autre.UserID, matiere.MatiereID); err != nil {
		t.Fatalf("CheckSeuil failed: %v", err)
	}

	both, err := svc.ListByEtudiantAndMatiere(context.Background(), etudiant.UserID, matiere.MatiereID)
	if err != nil {
		t.Fatalf("ListByEtudiantAndMatiere failed: %v", err)
	}
	if len(both) != 1 || both[0].EtudiantID != etudiant.UserID {
		t.Errorf("expected only the etudiant's avertissement, got %d", len(both))
	}

	automatiques, err := svc.ListByAutomatique(context.Background(), true)
	if err != nil {
		t.Fatalf("ListByAutomatique failed: %v", err)
	}
	if len(automatiques) != 1 || automatiques[0].EtudiantID != autre.UserID {
		t.Errorf("expected 1 automatic avertissement, got %d", len(automatiques))
	}

	manuels, err := svc.ListByAutomatique(context.Background(), false)
	if err != nil {
		t.Fatalf("ListByAutomatique failed: %v", err)
	}
	if len(manuels) != 1 || manuels[0].EtudiantID != etudiant.UserID {
		t.Errorf("expected 1 manual avertissement, got %d", len(manuels))
	}
}

func TestUpdateMotif(t *testing.T) {
	svc, repos := setupTestAvertissementService()
	enseignant := createTestEnseignant(repos)
	matiere := createTestMatiere(repos, enseignant.UserID)
	etudiant := createTestEtudiant(repos, matiere.FormationID)

	a, err := svc.Create(context.Background(), &dto.CreateAvertissementRequest{
		EtudiantID:     etudiant.UserID,
		MatiereID:      matiere.MatiereID,
		NombreAbsences: 2,
		Motif:          "Premier motif",
	}, enseignant.UserID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.UpdateMotif(context.Background(), a.AvertissementID, &dto.UpdateMotifRequest{
		Motif: "Motif corrige",
	})
	if err != nil {
		t.Fatalf("UpdateMotif failed: %v", err)
	}
	if updated.Motif != "Motif corrige" {
		t.Errorf("expected updated motif, got %q", updated.Motif)
	}
}

func TestDeleteAvertissement_NotFound(t *testing.T) {
	svc, _ := setupTestAvertissementService()

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrAvertissementNotFound) {
		t.Errorf("expected ErrAvertissementNotFound, got %v", err)
	}
}
