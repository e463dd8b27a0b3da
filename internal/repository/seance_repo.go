package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// SeanceRepository is the class-sessions data-access interface.
type SeanceRepository interface {
	Create(ctx context.Context, seance *model.Seance) error
	GetByID(ctx context.Context, id string) (*model.Seance, error)
	List(ctx context.Context) ([]model.Seance, error)
	ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error)
	ListByMatiere(ctx context.Context, matiereID string) ([]model.Seance, error)
	ListByGroupe(ctx context.Context, groupeID string) ([]model.Seance, error)
	ListUpcomingByEnseignant(ctx context.Context, enseignantID string, from time.Time) ([]model.Seance, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Seance, error)
	Update(ctx context.Context, seance *model.Seance) error
	Delete(ctx context.Context, id string) error
}

type seanceRepo struct {
	db *gorm.DB
}

// NewSeanceRepo creates the GORM-backed SeanceRepository.
func NewSeanceRepo(db *gorm.DB) SeanceRepository {
	return &seanceRepo{db: db}
}

func (r *seanceRepo) Create(ctx context.Context, seance *model.Seance) error {
	return r.db.WithContext(ctx).Create(seance).Error
}

func (r *seanceRepo) GetByID(ctx context.Context, id string) (*model.Seance, error) {
	var seance model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Preload("Enseignant").
		Preload("Groupe").
		Where("seance_id = ?", id).
		First(&seance).Error
	if err != nil {
		return nil, err
	}
	return &seance, nil
}

func (r *seanceRepo) List(ctx context.Context) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Order("date_debut DESC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Preload("Groupe").
		Where("enseignant_id = ?", enseignantID).
		Order("date_debut DESC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) ListByMatiere(ctx context.Context, matiereID string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Groupe").
		Where("matiere_id = ?", matiereID).
		Order("date_debut DESC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) ListByGroupe(ctx context.Context, groupeID string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Where("groupe_id = ?", groupeID).
		Order("date_debut DESC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) ListUpcomingByEnseignant(ctx context.Context, enseignantID string, from time.Time) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Preload("Groupe").
		Where("enseignant_id = ? AND date_debut >= ? AND annulee = ?", enseignantID, from, false).
		Order("date_debut ASC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Where("date_debut >= ? AND date_debut < ?", from, to).
		Order("date_debut ASC").
		Find(&seances).Error
	return seances, err
}

func (r *seanceRepo) Update(ctx context.Context, seance *model.Seance) error {
	return r.db.WithContext(ctx).Save(seance).Error
}

func (r *seanceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("seance_id = ?", id).
		Delete(&model.Seance{}).Error
}
