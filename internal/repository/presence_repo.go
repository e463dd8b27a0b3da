package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/model"
)

// PresenceRepository is the attendance-records data-access interface.
type PresenceRepository interface {
	Create(ctx context.Context, presence *model.Presence) error
	GetByID(ctx context.Context, id string) (*model.Presence, error)
	GetBySeanceAndEtudiant(ctx context.Context, seanceID, etudiantID string) (*model.Presence, error)
	ListBySeance(ctx context.Context, seanceID string) ([]model.Presence, error)
	ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error)
	ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Presence, error)
	ListAbsencesByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error)
	ExistsBySeanceAndEtudiant(ctx context.Context, seanceID, etudiantID string) (bool, error)
	CountBySeanceAndStatut(ctx context.Context, seanceID string, statut model.StatutPresence) (int64, error)
	CountByEtudiantAndStatut(ctx context.Context, etudiantID string, statut model.StatutPresence) (int64, error)
	CountAbsences(ctx context.Context, etudiantID, matiereID string) (int64, error)
	Update(ctx context.Context, presence *model.Presence) error
	Delete(ctx context.Context, id string) error
}

type presenceRepo struct {
	db *gorm.DB
}

// NewPresenceRepo creates the GORM-backed PresenceRepository.
func NewPresenceRepo(db *gorm.DB) PresenceRepository {
	return &presenceRepo{db: db}
}

func (r *presenceRepo) Create(ctx context.Context, presence *model.Presence) error {
	return r.db.WithContext(ctx).Create(presence).Error
}

func (r *presenceRepo) GetByID(ctx context.Context, id string) (*model.Presence, error) {
	var presence model.Presence
	err := r.db.WithContext(ctx).
		Preload("Seance").
		Preload("Seance.Matiere").
		Preload("Etudiant").
		Where("presence_id = ?", id).
		First(&presence).Error
	if err != nil {
		return nil, err
	}
	return &presence, nil
}

func (r *presenceRepo) GetBySeanceAndEtudiant(ctx context.Context, seanceID, etudiantID string) (*model.Presence, error) {
	var presence model.Presence
	err := r.db.WithContext(ctx).
		Where("seance_id = ? AND etudiant_id = ?", seanceID, etudiantID).
		First(&presence).Error
	if err != nil {
		return nil, err
	}
	return &presence, nil
}

func (r *presenceRepo) ListBySeance(ctx context.Context, seanceID string) ([]model.Presence, error) {
	var presences []model.Presence
	err := r.db.WithContext(ctx).
		Preload("Etudiant").
		Where("seance_id = ?", seanceID).
		Find(&presences).Error
	return presences, err
}

func (r *presenceRepo) ListByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error) {
	var presences []model.Presence
	err := r.db.WithContext(ctx).
		Preload("Seance").
		Preload("Seance.Matiere").
		Where("etudiant_id = ?", etudiantID).
		Find(&presences).Error
	return presences, err
}

func (r *presenceRepo) ListByEtudiantAndMatiere(ctx context.Context, etudiantID, matiereID string) ([]model.Presence, error) {
	var presences []model.Presence
	err := r.db.WithContext(ctx).
		Preload("Seance").
		Joins("JOIN seances ON seances.seance_id = presences.seance_id").
		Where("presences.etudiant_id = ? AND seances.matiere_id = ?", etudiantID, matiereID).
		Find(&presences).Error
	return presences, err
}

func (r *presenceRepo) ListAbsencesByEtudiant(ctx context.Context, etudiantID string) ([]model.Presence, error) {
	var presences []model.Presence
	err := r.db.WithContext(ctx).
		Preload("Seance").
		Preload("Seance.Matiere").
		Where("etudiant_id = ? AND statut = ?", etudiantID, model.StatutAbsent).
		Find(&presences).Error
	return presences, err
}

func (r *presenceRepo) ExistsBySeanceAndEtudiant(ctx context.Context, seanceID, etudiantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Presence{}).
		Where("seance_id = ? AND etudiant_id = ?", seanceID, etudiantID).
		Count(&count).Error
	return count > 0, err
}

func (r *presenceRepo) CountBySeanceAndStatut(ctx context.Context, seanceID string, statut model.StatutPresence) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Presence{}).
		Where("seance_id = ? AND statut = ?", seanceID, statut).
		Count(&count).Error
	return count, err
}

func (r *presenceRepo) CountByEtudiantAndStatut(ctx context.Context, etudiantID string, statut model.StatutPresence) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Presence{}).
		Where("etudiant_id = ? AND statut = ?", etudiantID, statut).
		Count(&count).Error
	return count, err
}

func (r *presenceRepo) CountAbsences(ctx context.Context, etudiantID, matiereID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Presence{}).
		Joins("JOIN seances ON seances.seance_id = presences.seance_id").
		Where("presences.etudiant_id = ? AND presences.statut = ? AND seances.matiere_id = ?",
			etudiantID, model.StatutAbsent, matiereID).
		Count(&count).Error
	return count, err
}

func (r *presenceRepo) Update(ctx context.Context, presence *model.Presence) error {
	return r.db.WithContext(ctx).Save(presence).Error
}

func (r *presenceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("presence_id = ?", id).
		Delete(&model.Presence{}).Error
}
