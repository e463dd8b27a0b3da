package handler

import "github.com/triomphant75/Gestion-Absence/internal/service"

// Handler aggregates the HTTP handlers of every module.
type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Departement   *DepartementHandler
	Formation     *FormationHandler
	Groupe        *GroupeHandler
	Matiere       *MatiereHandler
	Seance        *SeanceHandler
	Presence      *PresenceHandler
	Avertissement *AvertissementHandler
	Justificatif  *JustificatifHandler
	Chef          *ChefDepartementHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		User:          NewUserHandler(svc.User),
		Departement:   NewDepartementHandler(svc.Departement),
		Formation:     NewFormationHandler(svc.Formation),
		Groupe:        NewGroupeHandler(svc.Groupe),
		Matiere:       NewMatiereHandler(svc.Matiere),
		Seance:        NewSeanceHandler(svc.Seance, svc.Export),
		Presence:      NewPresenceHandler(svc.Presence),
		Avertissement: NewAvertissementHandler(svc.Avertissement),
		Justificatif:  NewJustificatifHandler(svc.Justificatif),
		Chef:          NewChefDepartementHandler(svc.ChefDepartement),
	}
}
