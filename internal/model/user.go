package model

// Role of a user in the system.
type Role string

const (
	RoleEtudiant        Role = "ETUDIANT"
	RoleEnseignant      Role = "ENSEIGNANT"
	RoleChefDepartement Role = "CHEF_DEPARTEMENT"
	RoleSecretariat     Role = "SECRETARIAT"
	RoleAdmin           Role = "ADMIN"
)

// User is any account: student, teacher, department head, registrar or
// admin, table users. NumeroEtudiant and FormationID are student-only
// fields; NumeroEnseignant and DepartementID are staff-only fields.
type User struct {
	UserID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Nom              string `gorm:"type:varchar(100);not null"                     json:"nom"`
	Prenom           string `gorm:"type:varchar(100);not null"                     json:"prenom"`
	Email            string `gorm:"type:varchar(255);not null;unique"              json:"email"`
	Telephone        string `gorm:"type:varchar(30)"                               json:"telephone,omitempty"`
	MotDePasse       string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role             Role   `gorm:"type:varchar(20);not null"                      json:"role"`
	Actif            bool   `gorm:"not null;default:true"                          json:"actif"`
	NumeroEtudiant   string `gorm:"type:varchar(20)"                               json:"numero_etudiant,omitempty"`
	FormationID      string `gorm:"type:uuid"                                      json:"formation_id,omitempty"`
	NumeroEnseignant string `gorm:"type:varchar(20)"                               json:"numero_enseignant,omitempty"`
	DepartementID    string `gorm:"type:uuid"                                      json:"departement_id,omitempty"`
	BaseModel

	Formation   *Formation   `gorm:"foreignKey:FormationID;references:FormationID"     json:"formation,omitempty"`
	Departement *Departement `gorm:"foreignKey:DepartementID;references:DepartementID" json:"departement,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// NomComplet returns "Prenom Nom" for display.
func (u *User) NomComplet() string {
	return u.Prenom + " " + u.Nom
}
