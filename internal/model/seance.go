package model

import "time"

// StatutSeance is the lifecycle status of a class session.
type StatutSeance string

const (
	StatutSeancePrevue   StatutSeance = "PREVUE"   // scheduled
	StatutSeanceReportee StatutSeance = "REPORTEE" // rescheduled after an edit
	StatutSeanceEnCours  StatutSeance = "EN_COURS" // running, code active
	StatutSeanceTerminee StatutSeance = "TERMINEE" // stopped, absences backfilled
	StatutSeanceAnnulee  StatutSeance = "ANNULEE"  // cancelled
)

// Seance is one scheduled meeting of a matiere, table seances.
// GroupeID is nil for CM sessions (whole cohort) and required for TD_TP.
// While SeanceActive is true the session carries a short-lived check-in
// code; stop and cancel clear the code and expiry.
type Seance struct {
	SeanceID       string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"seance_id"`
	MatiereID      string       `gorm:"type:uuid;not null"                             json:"matiere_id"`
	EnseignantID   string       `gorm:"type:uuid;not null"                             json:"enseignant_id"`
	GroupeID       *string      `gorm:"type:uuid"                                      json:"groupe_id,omitempty"`
	TypeSeance     TypeSeance   `gorm:"type:varchar(10);not null"                      json:"type_seance"`
	Statut         StatutSeance `gorm:"type:varchar(20);not null;default:'PREVUE'"     json:"statut"`
	DateDebut      time.Time    `gorm:"not null"                                       json:"date_debut"`
	DateFin        time.Time    `gorm:"not null"                                       json:"date_fin"`
	Salle          string       `gorm:"type:varchar(100)"                              json:"salle,omitempty"`
	Commentaire    string       `gorm:"type:varchar(500)"                              json:"commentaire,omitempty"`
	CodeDynamique  *string      `gorm:"type:varchar(6)"                                json:"-"`
	CodeExpiration *time.Time   `json:"-"`
	SeanceActive   bool         `gorm:"not null;default:false"                         json:"seance_active"`
	Terminee       bool         `gorm:"not null;default:false"                         json:"terminee"`
	Annulee        bool         `gorm:"not null;default:false"                         json:"annulee"`
	BaseModel

	Matiere    *Matiere `gorm:"foreignKey:MatiereID;references:MatiereID"  json:"matiere,omitempty"`
	Enseignant *User    `gorm:"foreignKey:EnseignantID;references:UserID"  json:"enseignant,omitempty"`
	Groupe     *Groupe  `gorm:"foreignKey:GroupeID;references:GroupeID"    json:"groupe,omitempty"`
}

// TableName sets the table name.
func (Seance) TableName() string { return "seances" }
