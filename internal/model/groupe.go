package model

// Groupe is a TD/TP group within a formation, table groupes.
type Groupe struct {
	GroupeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"groupe_id"`
	Nom         string `gorm:"type:varchar(100);not null"                     json:"nom"`
	FormationID string `gorm:"type:uuid;not null"                             json:"formation_id"`
	CapaciteMax int    `gorm:"not null;default:30"                            json:"capacite_max"`
	Actif       bool   `gorm:"not null;default:true"                          json:"actif"`
	BaseModel

	Formation *Formation `gorm:"foreignKey:FormationID;references:FormationID" json:"formation,omitempty"`
}

// TableName sets the table name.
func (Groupe) TableName() string { return "groupes" }
