package model

import "time"

// Avertissement flags a student who crossed a course's absence threshold,
// table avertissements. At most one per (etudiant, matiere), enforced by
// the database; once issued it is never re-evaluated as absences grow.
// CreateurID is nil for automatically generated warnings.
type Avertissement struct {
	AvertissementID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                     json:"avertissement_id"`
	EtudiantID        string    `gorm:"type:uuid;not null;uniqueIndex:uq_avertissement_etudiant_matiere"   json:"etudiant_id"`
	MatiereID         string    `gorm:"type:uuid;not null;uniqueIndex:uq_avertissement_etudiant_matiere"   json:"matiere_id"`
	NombreAbsences    int       `gorm:"not null"                                                           json:"nombre_absences"`
	Motif             string    `gorm:"type:varchar(1000)"                                                 json:"motif,omitempty"`
	Automatique       bool      `gorm:"not null;default:true"                                              json:"automatique"`
	CreateurID        *string   `gorm:"type:uuid"                                                          json:"createur_id,omitempty"`
	DateAvertissement time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                                 json:"date_avertissement"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                                 json:"created_at"`

	Etudiant *User    `gorm:"foreignKey:EtudiantID;references:UserID"    json:"etudiant,omitempty"`
	Matiere  *Matiere `gorm:"foreignKey:MatiereID;references:MatiereID"  json:"matiere,omitempty"`
	Createur *User    `gorm:"foreignKey:CreateurID;references:UserID"    json:"createur,omitempty"`
}

// TableName sets the table name.
func (Avertissement) TableName() string { return "avertissements" }
