package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// AvertissementRepository is the absence-warnings data-access interface.
type AvertissementRepository interface {
	Create(ctx context.Context, avertissement *model.Avertissement) error
	GetByID(ctx context.Context, id string) (*model.Avertissement, error)
	List(ctx context.Context) ([]model.Avertissement, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Avertissement, error)
	ListByMatiere(ctx context.Context, matiereID string) ([]model.Avertissement, error)
	ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Avertissement, error)
	ListByAutomatique(ctx context.Context, automatique bool) ([]model.Avertissement, error)
	ExistsByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) (bool, error)
	CountByEtudiant(ctx context.Context, etudiantID string) (int64, error)
	Update(ctx context.Context, avertissement *model.Avertissement) error
	Delete(ctx context.Context, id string) error
}

type avertissementRepo struct {
	db *gorm.DB
}

// NewAvertissementRepo creates the GORM-backed AvertissementRepository.
func NewAvertissementRepo(db *gorm.DB) AvertissementRepository {
	return &avertissementRepo{db: db}
}

func (r *avertissementRepo) Create(ctx context.Context, avertissement *model.Avertissement) error {
	return r.db.WithContext(ctx).Create(avertissement).Error
}

func (r *avertissementRepo) GetByID(ctx context.Context, id string) (*model.Avertissement, error) {
	var avertissement model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Matiere").
		Where("avertissement_id = ?", id).
		First(&avertissement).Error
	if err != nil {
		return nil, err
	}
	return &avertissement, nil
}

func (r *avertissementRepo) List(ctx context.Context) ([]model.Avertissement, error) {
	var avertissements []model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Matiere").
		Order("date_avertissement DESC").
		Find(&avertissements).Error
	return avertissements, err
}

func (r *avertissementRepo) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Avertissement, error) {
	var avertissements []model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Where("etudiant_id = ?", etudiantID).
		Order("date_avertissement DESC").
		Find(&avertissements).Error
	return avertissements, err
}

func (r *avertissementRepo) ListByMatiere(ctx context.Context, matiereID string) ([]model.Avertissement, error) {
	var avertissements []model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Where("matiere_id = ?", matiereID).
		Order("date_avertissement DESC").
		Find(&avertissements).Error
	return avertissements, err
}

func (r *avertissementRepo) ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Avertissement, error) {
	var avertissements []model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Matiere").
		Where("etudiant_id = ? AND matiere_id = ?", etudiantID, matiereID).
		Order("date_avertissement DESC").
		Find(&avertissements).Error
	return avertissements, err
}

func (r *avertissementRepo) ListByAutomatique(ctx context.Context, automatique bool) ([]model.Avertissement, error) {
	var avertissements []model.Avertissement
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Matiere").
		Where("automatique = ?", automatique).
		Order("date_avertissement DESC").
		Find(&avertissements).Error
	return avertissements, err
}

func (r *avertissementRepo) ExistsByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Avertissement{}).
		Where("etudiant_id = ? AND matiere_id = ?", etudiantID, matiereID).
		Count(&count).Error
	return count > 0, err
}

func (r *avertissementRepo) CountByEtudiant(ctx context.Context, etudiantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Avertissement{}).
		Where("etudiant_id = ?", etudiantID).
		Count(&count).Error
	return count, err
}

func (r *avertissementRepo) Update(ctx context.Context, avertissement *model.Avertissement) error {
	return r.db.WithContext(ctx).Save(avertissement).Error
}

func (r *avertissementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("avertissement_id = ?", id).
		Delete(&model.Avertissement{}).Error
}
