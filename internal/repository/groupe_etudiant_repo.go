package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// GroupeEtudiantRepository is the group-membership data-access interface.
type GroupeEtudiantRepository interface {
	Create(ctx context.Context, affectation *model.GroupeEtudiant) error
	ListByGroupe(ctx context.Context, groupeID string) ([]model.GroupeEtudiant, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.GroupeEtudiant, error)
	Exists(ctx context.Context, etudiantID, groupeID string) (bool, error)
	CountByGroupe(ctx context.Context, groupeID string) (int64, error)
	Delete(ctx context.Context, etudiantID, groupeID string) error
}

type groupeEtudiantRepo struct {
	db *gorm.DB
}

// NewGroupeEtudiantRepo creates the GORM-backed GroupeEtudiantRepository.
func NewGroupeEtudiantRepo(db *gorm.DB) GroupeEtudiantRepository {
	return &groupeEtudiantRepo{db: db}
}

func (r *groupeEtudiantRepo) Create(ctx context.Context, affectation *model.GroupeEtudiant) error {
	return r.db.WithContext(ctx).Create(affectation).Error
}

func (r *groupeEtudiantRepo) ListByGroupe(ctx context.Context, groupeID string) ([]model.GroupeEtudiant, error) {
	var affectations []model.GroupeEtudiant
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Where("groupe_id = ?", groupeID).
		Find(&affectations).Error
	return affectations, err
}

func (r *groupeEtudiantRepo) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.GroupeEtudiant, error) {
	var affectations []model.GroupeEtudiant
	err := r.db.WithContext(ctx).
		Preload("Groupe").
		Where("etudiant_id = ?", etudiantID).
		Find(&affectations).Error
	return affectations, err
}

func (r *groupeEtudiantRepo) Exists(ctx context.Context, etudiantID, groupeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupeEtudiant{}).
		Where("etudiant_id = ? AND groupe_id = ?", etudiantID, groupeID).
		Count(&count).Error
	return count > 0, err
}

func (r *groupeEtudiantRepo) CountByGroupe(ctx context.Context, groupeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupeEtudiant{}).
		Where("groupe_id = ?", groupeID).
		Count(&count).Error
	return count, err
}

func (r *groupeEtudiantRepo) Delete(ctx context.Context, etudiantID, groupeID string) error {
	return r.db.WithContext(ctx).
		Where("etudiant_id = ? AND groupe_id = ?", etudiantID, groupeID).
		Delete(&model.GroupeEtudiant{}).Error
}
