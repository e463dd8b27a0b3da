package model

// Departement is a university department, table departements.
type Departement struct {
	DepartementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"departement_id"`
	Nom           string `gorm:"type:varchar(100);not null;unique"              json:"nom"`
	Description   string `gorm:"type:text"                                      json:"description,omitempty"`
	Actif         bool   `gorm:"not null;default:true"                          json:"actif"`
	BaseModel
}

// TableName sets the table name.
func (Departement) TableName() string { return "departements" }
