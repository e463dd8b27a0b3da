package dto

// CreateUserRequest creates any account. Role decides which optional
// fields are required: students need numero_etudiant + formation_id,
// teachers and department heads need numero_enseignant + departement_id.
type CreateUserRequest struct {
	Nom              string `json:"nom"               binding:"required,max=100"`
	Prenom           string `json:"prenom"            binding:"required,max=100"`
	Email            string `json:"email"             binding:"required,email"`
	Telephone        string `json:"telephone"         binding:"omitempty,max=30"`
	MotDePasse       string `json:"mot_de_passe"      binding:"required,min=8"`
	Role             string `json:"role"              binding:"required,oneof=ETUDIANT ENSEIGNANT CHEF_DEPARTEMENT SECRETARIAT ADMIN"`
	NumeroEtudiant   string `json:"numero_etudiant"   binding:"omitempty,max=20"`
	FormationID      string `json:"formation_id"      binding:"omitempty,uuid"`
	NumeroEnseignant string `json:"numero_enseignant" binding:"omitempty,max=20"`
	DepartementID    string `json:"departement_id"    binding:"omitempty,uuid"`
}

// UpdateUserRequest updates an account; nil fields are left untouched.
type UpdateUserRequest struct {
	Nom           *string `json:"nom"            binding:"omitempty,max=100"`
	Prenom        *string `json:"prenom"         binding:"omitempty,max=100"`
	Email         *string `json:"email"          binding:"omitempty,email"`
	Telephone     *string `json:"telephone"      binding:"omitempty,max=30"`
	MotDePasse    *string `json:"mot_de_passe"   binding:"omitempty,min=8"`
	FormationID   *string `json:"formation_id"   binding:"omitempty,uuid"`
	DepartementID *string `json:"departement_id" binding:"omitempty,uuid"`
	Actif         *bool   `json:"actif"`
}
