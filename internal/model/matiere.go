package model

// TypeSeance distinguishes lectures from small-group sessions.
// CM sessions are open to the whole formation cohort; TD_TP sessions are
// tied to one groupe.
type TypeSeance string

const (
	TypeSeanceCM   TypeSeance = "CM"
	TypeSeanceTDTP TypeSeance = "TD_TP"
)

// Matiere is a taught course, table matieres.
// SeuilAbsences is the number of absences after which an automatic
// avertissement is issued.
type Matiere struct {
	MatiereID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"matiere_id"`
	Nom           string     `gorm:"type:varchar(100);not null"                     json:"nom"`
	Code          string     `gorm:"type:varchar(10);unique"                        json:"code,omitempty"`
	Description   string     `gorm:"type:text"                                      json:"description,omitempty"`
	FormationID   string     `gorm:"type:uuid;not null"                             json:"formation_id"`
	EnseignantID  string     `gorm:"type:uuid"                                      json:"enseignant_id,omitempty"`
	TypeSeance    TypeSeance `gorm:"type:varchar(10);not null;default:'CM'"         json:"type_seance"`
	Coefficient   float64    `gorm:"not null;default:1.0"                           json:"coefficient"`
	HeuresTotal   int        `gorm:"not null;default:0"                             json:"heures_total"`
	SeuilAbsences int        `gorm:"not null;default:3"                             json:"seuil_absences"`
	Actif         bool       `gorm:"not null;default:true"                          json:"actif"`
	BaseModel

	Formation  *Formation `gorm:"foreignKey:FormationID;references:FormationID"  json:"formation,omitempty"`
	Enseignant *User      `gorm:"foreignKey:EnseignantID;references:UserID"      json:"enseignant,omitempty"`
}

// TableName sets the table name.
func (Matiere) TableName() string { return "matieres" }
