package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// DepartementRepository is the departments data-access interface.
type DepartementRepository interface {
	Create(ctx context.Context, dept *model.Departement) error
	GetByID(ctx context.Context, id string) (*model.Departement, error)
	GetByNom(ctx context.Context, nom string) (*model.Departement, error)
	List(ctx context.Context) ([]model.Departement, error)
	ListActive(ctx context.Context) ([]model.Departement, error)
	Update(ctx context.Context, dept *model.Departement) error
	Delete(ctx context.Context, id string) error
}

type departementRepo struct {
	db *gorm.DB
}

// NewDepartementRepo creates the GORM-backed DepartementRepository.
func NewDepartementRepo(db *gorm.DB) DepartementRepository {
	return &departementRepo{db: db}
}

func (r *departementRepo) Create(ctx context.Context, dept *model.Departement) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departementRepo) GetByID(ctx context.Context, id string) (*model.Departement, error) {
	var dept model.Departement
	err := r.db.WithContext(ctx).
		Where("departement_id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departementRepo) GetByNom(ctx context.Context, nom string) (*model.Departement, error) {
	var dept model.Departement
	err := r.db.WithContext(ctx).
		Where("nom = ?", nom).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departementRepo) List(ctx context.Context) ([]model.Departement, error) {
	var depts []model.Departement
	err := r.db.WithContext(ctx).
		Order("nom ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departementRepo) ListActive(ctx context.Context) ([]model.Departement, error) {
	var depts []model.Departement
	err := r.db.WithContext(ctx).
		Where("actif = ?", true).
		Order("nom ASC").
		Find(&depts).Error
	return depts, err
}

func (r *departementRepo) Update(ctx context.Context, dept *model.Departement) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *departementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("departement_id = ?", id).
		Delete(&model.Departement{}).Error
}
