package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// GroupeRepository is the TD/TP groups data-access interface.
type GroupeRepository interface {
	Create(ctx context.Context, groupe *model.Groupe) error
	GetByID(ctx context.Context, id string) (*model.Groupe, error)
	List(ctx context.Context) ([]model.Groupe, error)
	ListByFormation(ctx context.Context, formationID string) ([]model.Groupe, error)
	Update(ctx context.Context, groupe *model.Groupe) error
	Delete(ctx context.Context, id string) error
}

type groupeRepo struct {
	db *gorm.DB
}

// NewGroupeRepo creates the GORM-backed GroupeRepository.
func NewGroupeRepo(db *gorm.DB) GroupeRepository {
	return &groupeRepo{db: db}
}

func (r *groupeRepo) Create(ctx context.Context, groupe *model.Groupe) error {
	return r.db.WithContext(ctx).Create(groupe).Error
}

func (r *groupeRepo) GetByID(ctx context.Context, id string) (*model.Groupe, error) {
	var groupe model.Groupe
	err := r.db.WithContext(ctx).
		Preload("Formation").
		Where("groupe_id = ?", id).
		First(&groupe).Error
	if err != nil {
		return nil, err
	}
	return &groupe, nil
}

func (r *groupeRepo) List(ctx context.Context) ([]model.Groupe, error) {
	var groupes []model.Groupe
	err := r.db.WithContext(ctx).
		Preload("Formation").
		Order("nom ASC").
		Find(&groupes).Error
	return groupes, err
}

func (r *groupeRepo) ListByFormation(ctx context.Context, formationID string) ([]model.Groupe, error) {
	var groupes []model.Groupe
	err := r.db.WithContext(ctx).
		Where("formation_id = ?", formationID).
		Order("nom ASC").
		Find(&groupes).Error
	return groupes, err
}

func (r *groupeRepo) Update(ctx context.Context, groupe *model.Groupe) error {
	return r.db.WithContext(ctx).Save(groupe).Error
}

func (r *groupeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("groupe_id = ?", id).
		Delete(&model.Groupe{}).Error
}
