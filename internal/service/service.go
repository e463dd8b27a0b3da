package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/triomphant75/Gestion-Absence/config"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
	"github.com/triomphant75/Gestion-Absence/pkg/jwt"
	"github.com/triomphant75/Gestion-Absence/pkg/redis"
	"github.com/triomphant75/Gestion-Absence/pkg/storage"
)

// Service aggregates all business services.
type Service struct {
	Auth            AuthService
	User            UserService
	Departement     DepartementService
	Formation       FormationService
	Groupe          GroupeService
	Matiere         MatiereService
	Seance          SeanceService
	Presence        PresenceService
	Avertissement   AvertissementService
	Justificatif    JustificatifService
	ChefDepartement ChefDepartementService
	Export          ExportService
}

// Deps carries everything the services need.
type Deps struct {
	Repo    *repository.Repository
	JWT     *jwt.Manager
	Redis   *redis.Client
	Storage *storage.Storage
	Config  *config.Config
	Logger  *zap.Logger
}

// NewService wires the business layer. The wall clock is injected into the
// time-sensitive services so tests can pin it.
func NewService(d Deps) *Service {
	now := time.Now

	avertissementSvc := NewAvertissementService(d.Repo, d.Logger, now)
	seanceSvc := NewSeanceService(d.Repo, avertissementSvc, d.Logger, now)

	return &Service{
		Auth:            NewAuthService(d.Repo, d.JWT, d.Redis, d.Logger),
		User:            NewUserService(d.Repo, d.Logger),
		Departement:     NewDepartementService(d.Repo, d.Logger),
		Formation:       NewFormationService(d.Repo, d.Logger),
		Groupe:          NewGroupeService(d.Repo, d.Logger),
		Matiere:         NewMatiereService(d.Repo, d.Logger),
		Seance:          seanceSvc,
		Presence:        NewPresenceService(d.Repo, avertissementSvc, d.Logger, now),
		Avertissement:   avertissementSvc,
		Justificatif:    NewJustificatifService(d.Repo, d.Storage, d.Logger, now),
		ChefDepartement: NewChefDepartementService(d.Repo, d.Logger),
		Export:          NewExportService(d.Repo, seanceSvc, d.Logger),
	}
}
