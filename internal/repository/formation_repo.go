package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// FormationRepository is the degree-programs data-access interface.
type FormationRepository interface {
	Create(ctx context.Context, formation *model.Formation) error
	GetByID(ctx context.Context, id string) (*model.Formation, error)
	List(ctx context.Context) ([]model.Formation, error)
	ListByDepartement(ctx context.Context, departementID string) ([]model.Formation, error)
	Update(ctx context.Context, formation *model.Formation) error
	Delete(ctx context.Context, id string) error
}

type formationRepo struct {
	db *gorm.DB
}

// NewFormationRepo creates the GORM-backed FormationRepository.
func NewFormationRepo(db *gorm.DB) FormationRepository {
	return &formationRepo{db: db}
}

func (r *formationRepo) Create(ctx context.Context, formation *model.Formation) error {
	return r.db.WithContext(ctx).Create(formation).Error
}

func (r *formationRepo) GetByID(ctx context.Context, id string) (*model.Formation, error) {
	var formation model.Formation
	err := r.db.WithContext(ctx).
		Preload("Departement").
		Where("formation_id = ?", id).
		First(&formation).Error
	if err != nil {
		return nil, err
	}
	return &formation, nil
}

func (r *formationRepo) List(ctx context.Context) ([]model.Formation, error) {
	var formations []model.Formation
	err := r.db.WithContext(ctx).
		Preload("Departement").
		Order("nom ASC").
		Find(&formations).Error
	return formations, err
}

func (r *formationRepo) ListByDepartement(ctx context.Context, departementID string) ([]model.Formation, error) {
	var formations []model.Formation
	err := r.db.WithContext(ctx).
		Where("departement_id = ?", departementID).
		Order("niveau ASC, nom ASC").
		Find(&formations).Error
	return formations, err
}

func (r *formationRepo) Update(ctx context.Context, formation *model.Formation) error {
	return r.db.WithContext(ctx).Save(formation).Error
}

func (r *formationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("formation_id = ?", id).
		Delete(&model.Formation{}).Error
}
