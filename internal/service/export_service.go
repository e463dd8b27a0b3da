package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var ErrExportFailed = errors.New("export generation failed")

// ExportService renders attendance data for consumption outside the API:
// xlsx attendance sheets and an iCalendar feed of a teacher's sessions.
type ExportService interface {
	FeuillePresence(ctx context.Context, seanceID string) (*bytes.Buffer, string, error)
	CalendrierEnseignant(ctx context.Context, enseignantID string) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	seance SeanceService
	logger *zap.Logger
}

// NewExportService creates the export service.
func NewExportService(repo *repository.Repository, seance SeanceService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, seance: seance, logger: logger}
}

// FeuillePresence builds the xlsx attendance sheet for one session:
// the roster with each student's recorded statut and check-in time.
func (s *exportService) FeuillePresence(ctx context.Context, seanceID string) (*bytes.Buffer, string, error) {
	seance, err := s.repo.Seance.GetByID(ctx, seanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSeanceNotFound
		}
		return nil, "", err
	}

	roster, err := s.seance.Roster(ctx, seanceID)
	if err != nil {
		return nil, "", err
	}

	presences, err := s.repo.Presence.ListBySeance(ctx, seanceID)
	if err != nil {
		return nil, "", err
	}
	byEtudiant := make(map[string]*model.Presence, len(presences))
	for i := range presences {
		byEtudiant[presences[i].EtudiantID] = &presences[i]
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Presences"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "C", 32)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	matiereNom := seance.MatiereID
	if seance.Matiere != nil {
		matiereNom = seance.Matiere.Nom
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s - %s", matiereNom, seance.DateDebut.Format("02/01/2006 15:04")))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"Numero", "Nom", "Email", "Statut", "Heure de validation"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cellRef := fmt.Sprintf("%s2", col)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	row := 3
	for _, e := range roster.Etudiants {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.NumeroEtudiant)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%s %s", e.Prenom, e.Nom))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Email)

		if p, ok := byEtudiant[e.UserID]; ok {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(p.Statut))
			if p.HeureValidation != nil {
				f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.HeureValidation.Format("15:04:05"))
			}
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), "-")
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("xlsx write failed", zap.Error(err))
		return nil, "", ErrExportFailed
	}

	filename := fmt.Sprintf("presences_%s.xlsx", seance.DateDebut.Format("2006-01-02"))
	return buf, filename, nil
}

// CalendrierEnseignant serializes a teacher's non-cancelled sessions as an
// iCalendar feed (RFC 5545) for subscription by calendar clients.
func (s *exportService) CalendrierEnseignant(ctx context.Context, enseignantID string) (string, error) {
	enseignant, err := s.repo.User.GetByID(ctx, enseignantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	seances, err := s.repo.Seance.ListByEnseignant(ctx, enseignantID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gestion-absence//FR")
	cal.SetName(fmt.Sprintf("Seances de %s", enseignant.NomComplet()))

	for _, seance := range seances {
		if seance.Statut == model.StatutSeanceAnnulee {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@gestion-absence", seance.SeanceID))
		event.SetStartAt(seance.DateDebut)
		event.SetEndAt(seance.DateFin)

		summary := string(seance.TypeSeance)
		if seance.Matiere != nil {
			summary = fmt.Sprintf("%s (%s)", seance.Matiere.Nom, seance.TypeSeance)
		}
		event.SetSummary(summary)
		if seance.Salle != "" {
			event.SetLocation(seance.Salle)
		}
		if seance.Commentaire != "" {
			event.SetDescription(seance.Commentaire)
		}
	}

	return cal.Serialize(), nil
}
