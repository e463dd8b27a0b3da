package model

import "time"

// GroupeEtudiant links a student to a TD/TP group, table groupe_etudiants.
// The (etudiant, groupe) pair is unique.
type GroupeEtudiant struct {
	GroupeEtudiantID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"groupe_etudiant_id"`
	EtudiantID       string    `gorm:"type:uuid;not null;uniqueIndex:uq_groupe_etudiant"  json:"etudiant_id"`
	GroupeID         string    `gorm:"type:uuid;not null;uniqueIndex:uq_groupe_etudiant"  json:"groupe_id"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"created_at"`

	Etudiant *User   `gorm:"foreignKey:EtudiantID;references:UserID"  json:"etudiant,omitempty"`
	Groupe   *Groupe `gorm:"foreignKey:GroupeID;references:GroupeID"  json:"groupe,omitempty"`
}

// TableName sets the table name.
func (GroupeEtudiant) TableName() string { return "groupe_etudiants" }
