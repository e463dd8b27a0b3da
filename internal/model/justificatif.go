package model

import "time"

// StatutJustificatif is the review status of an absence justification.
type StatutJustificatif string

const (
	StatutJustificatifEnAttente StatutJustificatif = "EN_ATTENTE"
	StatutJustificatifAccepte   StatutJustificatif = "ACCEPTE"
	StatutJustificatifRefuse    StatutJustificatif = "REFUSE"
)

// Justificatif is a document a student files to justify one absence,
// table justificatifs. Exactly one per absence (DB-enforced).
// FichierPath is the generated filename in the document store.
type Justificatif struct {
	JustificatifID        string             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"justificatif_id"`
	EtudiantID            string             `gorm:"type:uuid;not null"                                  json:"etudiant_id"`
	AbsenceID             string             `gorm:"type:uuid;not null;uniqueIndex:uq_justificatif_absence" json:"absence_id"`
	Motif                 string             `gorm:"type:varchar(500)"                                   json:"motif,omitempty"`
	FichierPath           string             `gorm:"type:varchar(255);not null"                          json:"fichier_path"`
	Statut                StatutJustificatif `gorm:"type:varchar(20);not null;default:'EN_ATTENTE'"      json:"statut"`
	ValidateurID          *string            `gorm:"type:uuid"                                           json:"validateur_id,omitempty"`
	CommentaireValidation string             `gorm:"type:varchar(500)"                                   json:"commentaire_validation,omitempty"`
	DateValidation        *time.Time         `json:"date_validation,omitempty"`
	BaseModel

	Etudiant   *User     `gorm:"foreignKey:EtudiantID;references:UserID"      json:"etudiant,omitempty"`
	Absence    *Presence `gorm:"foreignKey:AbsenceID;references:PresenceID"   json:"absence,omitempty"`
	Validateur *User     `gorm:"foreignKey:ValidateurID;references:UserID"    json:"validateur,omitempty"`
}

// TableName sets the table name.
func (Justificatif) TableName() string { return "justificatifs" }
