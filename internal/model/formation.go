package model

// Formation is a degree program (Licence, Master, ...), table formations.
// Niveau: 1 = L1, 2 = L2, 3 = L3, 4 = M1, 5 = M2.
type Formation struct {
	FormationID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"formation_id"`
	Nom           string `gorm:"type:varchar(100);not null"                     json:"nom"`
	Description   string `gorm:"type:text"                                      json:"description,omitempty"`
	DepartementID string `gorm:"type:uuid;not null"                             json:"departement_id"`
	Niveau        int    `json:"niveau"`
	Actif         bool   `gorm:"not null;default:true"                          json:"actif"`
	BaseModel

	Departement *Departement `gorm:"foreignKey:DepartementID;references:DepartementID" json:"departement,omitempty"`
}

// TableName sets the table name.
func (Formation) TableName() string { return "formations" }
