package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// MatiereRepository is the courses data-access interface.
type MatiereRepository interface {
	Create(ctx context.Context, matiere *model.Matiere) error
	GetByID(ctx context.Context, id string) (*model.Matiere, error)
	GetByCode(ctx context.Context, code string) (*model.Matiere, error)
	List(ctx context.Context) ([]model.Matiere, error)
	ListByFormation(ctx context.Context, formationID string) ([]model.Matiere, error)
	ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Matiere, error)
	Update(ctx context.Context, matiere *model.Matiere) error
	Delete(ctx context.Context, id string) error
}

type matiereRepo struct {
	db *gorm.DB
}

// NewMatiereRepo creates the GORM-backed MatiereRepository.
func NewMatiereRepo(db *gorm.DB) MatiereRepository {
	return &matiereRepo{db: db}
}

func (r *matiereRepo) Create(ctx context.Context, matiere *model.Matiere) error {
	return r.db.WithContext(ctx).Create(matiere).Error
}

func (r *matiereRepo) GetByID(ctx context.Context, id string) (*model.Matiere, error) {
	var matiere model.Matiere
	err := r.db.WithContext(ctx).
		Preload("Formation").
		Preload("Enseignant").
		Where("matiere_id = ?", id).
		First(&matiere).Error
	if err != nil {
		return nil, err
	}
	return &matiere, nil
}

func (r *matiereRepo) GetByCode(ctx context.Context, code string) (*model.Matiere, error) {
	var matiere model.Matiere
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&matiere).Error
	if err != nil {
		return nil, err
	}
	return &matiere, nil
}

func (r *matiereRepo) List(ctx context.Context) ([]model.Matiere, error) {
	var matieres []model.Matiere
	err := r.db.WithContext(ctx).
		Preload("Formation").
		Order("nom ASC").
		Find(&matieres).Error
	return matieres, err
}

func (r *matiereRepo) ListByFormation(ctx context.Context, formationID string) ([]model.Matiere, error) {
	var matieres []model.Matiere
	err := r.db.WithContext(ctx).
		Where("formation_id = ? AND actif = ?", formationID, true).
		Order("nom ASC").
		Find(&matieres).Error
	return matieres, err
}

func (r *matiereRepo) ListByEnseignant(ctx context.Context, enseignantID string) ([]model.Matiere, error) {
	var matieres []model.Matiere
	err := r.db.WithContext(ctx).
		Preload("Formation").
		Where("enseignant_id = ? AND actif = ?", enseignantID, true).
		Order("nom ASC").
		Find(&matieres).Error
	return matieres, err
}

func (r *matiereRepo) Update(ctx context.Context, matiere *model.Matiere) error {
	return r.db.WithContext(ctx).Save(matiere).Error
}

func (r *matiereRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("matiere_id = ?", id).
		Delete(&model.Matiere{}).Error
}
