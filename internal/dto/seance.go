package dto

import "time"

// CreateSeanceRequest schedules a session. GroupeID is required for TD_TP
// sessions and must be absent for CM sessions.
type CreateSeanceRequest struct {
	MatiereID    string    `json:"matiere_id"    binding:"required,uuid"`
	EnseignantID string    `json:"enseignant_id" binding:"required,uuid"`
	TypeSeance   string    `json:"type_seance"   binding:"required,oneof=CM TD_TP"`
	GroupeID     *string   `json:"groupe_id"     binding:"omitempty,uuid"`
	DateDebut    time.Time `json:"date_debut"    binding:"required"`
	DateFin      time.Time `json:"date_fin"      binding:"required"`
	Salle        string    `json:"salle"         binding:"omitempty,max=100"`
	Commentaire  string    `json:"commentaire"   binding:"omitempty,max=500"`
}

// UpdateSeanceRequest reschedules a session; the session moves to REPORTEE.
type UpdateSeanceRequest struct {
	MatiereID    string    `json:"matiere_id"    binding:"required,uuid"`
	EnseignantID string    `json:"enseignant_id" binding:"required,uuid"`
	TypeSeance   string    `json:"type_seance"   binding:"required,oneof=CM TD_TP"`
	GroupeID     *string   `json:"groupe_id"     binding:"omitempty,uuid"`
	DateDebut    time.Time `json:"date_debut"    binding:"required"`
	DateFin      time.Time `json:"date_fin"      binding:"required"`
	Salle        string    `json:"salle"         binding:"omitempty,max=100"`
	Commentaire  string    `json:"commentaire"   binding:"omitempty,max=500"`
}

// CodeResponse is the current check-in code shown by the presenting client.
type CodeResponse struct {
	Code     string    `json:"code"`
	ExpireAt time.Time `json:"expire_at"`
}

// EtudiantInscrit is one roster entry for a seance.
type EtudiantInscrit struct {
	UserID         string `json:"user_id"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	NumeroEtudiant string `json:"numero_etudiant"`
	Email          string `json:"email"`
}

// RosterResponse is the eligible-student list for a seance, used by staff
// to prepare attendance sheets.
type RosterResponse struct {
	SeanceID  string            `json:"seance_id"`
	Etudiants []EtudiantInscrit `json:"etudiants"`
	Total     int               `json:"total"`
}
