package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// JustificatifRepository is the absence-justifications data-access interface.
type JustificatifRepository interface {
	Create(ctx context.Context, justificatif *model.Justificatif) error
	GetByID(ctx context.Context, id string) (*model.Justificatif, error)
	GetByAbsence(ctx context.Context, absenceID string) (*model.Justificatif, error)
	List(ctx context.Context) ([]model.Justificatif, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Justificatif, error)
	ListByStatut(ctx context.Context, statut model.StatutJustificatif) ([]model.Justificatif, error)
	ListByValidateur(ctx context.Context, validateurID string) ([]model.Justificatif, error)
	ExistsByAbsence(ctx context.Context, absenceID string) (bool, error)
	Update(ctx context.Context, justificatif *model.Justificatif) error
	Delete(ctx context.Context, id string) error
}

type justificatifRepo struct {
	db *gorm.DB
}

// NewJustificatifRepo creates the GORM-backed JustificatifRepository.
func NewJustificatifRepo(db *gorm.DB) JustificatifRepository {
	return &justificatifRepo{db: db}
}

func (r *justificatifRepo) Create(ctx context.Context, justificatif *model.Justificatif) error {
	return r.db.WithContext(ctx).Create(justificatif).Error
}

func (r *justificatifRepo) GetByID(ctx context.Context, id string) (*model.Justificatif, error) {
	var justificatif model.Justificatif
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Absence").
		Preload("Absence.Seance").
		Where("justificatif_id = ?", id).
		First(&justificatif).Error
	if err != nil {
		return nil, err
	}
	return &justificatif, nil
}

func (r *justificatifRepo) GetByAbsence(ctx context.Context, absenceID string) (*model.Justificatif, error) {
	var justificatif model.Justificatif
	err := r.db.WithContext(ctx).
		Where("absence_id = ?", absenceID).
		First(&justificatif).Error
	if err != nil {
		return nil, err
	}
	return &justificatif, nil
}

func (r *justificatifRepo) List(ctx context.Context) ([]model.Justificatif, error) {
	var justificatifs []model.Justificatif
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Order("created_at DESC").
		Find(&justificatifs).Error
	return justificatifs, err
}

func (r *justificatifRepo) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Justificatif, error) {
	var justificatifs []model.Justificatif
	err := r.db.WithContext(ctx).
		Preload("Absence").
		Preload("Absence.Seance").
		Where("etudiant_id = ?", etudiantID).
		Order("created_at DESC").
		Find(&justificatifs).Error
	return justificatifs, err
}

func (r *justificatifRepo) ListByStatut(ctx context.Context, statut model.StatutJustificatif) ([]model.Justificatif, error) {
	var justificatifs []model.Justificatif
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Absence").
		Where("statut = ?", statut).
		Order("created_at ASC").
		Find(&justificatifs).Error
	return justificatifs, err
}

func (r *justificatifRepo) ListByValidateur(ctx context.Context, validateurID string) ([]model.Justificatif, error) {
	var justificatifs []model.Justificatif
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Preload("Absence").
		Where("validateur_id = ?", validateurID).
		Order("date_validation DESC").
		Find(&justificatifs).Error
	return justificatifs, err
}

func (r *justificatifRepo) ExistsByAbsence(ctx context.Context, absenceID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Justificatif{}).
		Where("absence_id = ?", absenceID).
		Count(&count).Error
	return count > 0, err
}

func (r *justificatifRepo) Update(ctx context.Context, justificatif *model.Justificatif) error {
	return r.db.WithContext(ctx).Save(justificatif).Error
}

func (r *justificatifRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("justificatif_id = ?", id).
		Delete(&model.Justificatif{}).Error
}
