package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User           UserRepository
	Departement    DepartementRepository
	Formation      FormationRepository
	Groupe         GroupeRepository
	GroupeEtudiant GroupeEtudiantRepository
	Matiere        MatiereRepository
	Seance         SeanceRepository
	Presence       PresenceRepository
	Avertissement  AvertissementRepository
	Justificatif   JustificatifRepository
}

// NewRepository builds the aggregate over one gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		Departement:    NewDepartementRepo(db),
		Formation:      NewFormationRepo(db),
		Groupe:         NewGroupeRepo(db),
		GroupeEtudiant: NewGroupeEtudiantRepo(db),
		Matiere:        NewMatiereRepo(db),
		Seance:         NewSeanceRepo(db),
		Presence:       NewPresenceRepo(db),
		Avertissement:  NewAvertissementRepo(db),
		Justificatif:   NewJustificatifRepo(db),
	}
}
