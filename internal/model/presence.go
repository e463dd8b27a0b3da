package model

import "time"

// StatutPresence is a student's attendance status for one seance.
type StatutPresence string

const (
	StatutPresent StatutPresence = "PRESENT"
	StatutAbsent  StatutPresence = "ABSENT"
	StatutRetard  StatutPresence = "RETARD"
)

// Presence records one student's attendance at one seance, table presences.
// The (seance, etudiant) pair is unique, enforced by the database so two
// concurrent check-ins cannot both commit. HeureValidation is set for
// PRESENT/RETARD rows, nil for ABSENT. ModificationManuelle marks rows
// entered or edited by staff rather than by code validation or backfill.
type Presence struct {
	PresenceID           string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                json:"presence_id"`
	SeanceID             string         `gorm:"type:uuid;not null;uniqueIndex:uq_presence_seance_etudiant"    json:"seance_id"`
	EtudiantID           string         `gorm:"type:uuid;not null;uniqueIndex:uq_presence_seance_etudiant"    json:"etudiant_id"`
	Statut               StatutPresence `gorm:"type:varchar(10);not null"                                     json:"statut"`
	HeureValidation      *time.Time     `json:"heure_validation,omitempty"`
	ModificationManuelle bool           `gorm:"not null;default:false"                                        json:"modification_manuelle"`
	Commentaire          string         `gorm:"type:varchar(500)"                                             json:"commentaire,omitempty"`
	BaseModel

	Seance   *Seance `gorm:"foreignKey:SeanceID;references:SeanceID"   json:"seance,omitempty"`
	Etudiant *User   `gorm:"foreignKey:EtudiantID;references:UserID"   json:"etudiant,omitempty"`
}

// TableName sets the table name.
func (Presence) TableName() string { return "presences" }
