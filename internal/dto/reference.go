package dto

// ── Departements ──

// CreateDepartementRequest creates a department.
type CreateDepartementRequest struct {
	Nom         string `json:"nom"         binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateDepartementRequest updates a department.
type UpdateDepartementRequest struct {
	Nom         *string `json:"nom"         binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Actif       *bool   `json:"actif"`
}

// ── Formations ──

// CreateFormationRequest creates a degree program.
type CreateFormationRequest struct {
	Nom           string `json:"nom"            binding:"required,min=2,max=100"`
	Description   string `json:"description"    binding:"omitempty,max=500"`
	DepartementID string `json:"departement_id" binding:"required,uuid"`
	Niveau        int    `json:"niveau"         binding:"omitempty,min=1,max=5"`
}

// UpdateFormationRequest updates a degree program.
type UpdateFormationRequest struct {
	Nom         *string `json:"nom"         binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Niveau      *int    `json:"niveau"      binding:"omitempty,min=1,max=5"`
	Actif       *bool   `json:"actif"`
}

// ── Groupes ──

// CreateGroupeRequest creates a TD/TP group.
type CreateGroupeRequest struct {
	Nom         string `json:"nom"          binding:"required,min=1,max=100"`
	FormationID string `json:"formation_id" binding:"required,uuid"`
	CapaciteMax int    `json:"capacite_max" binding:"omitempty,min=1"`
}

// UpdateGroupeRequest updates a TD/TP group.
type UpdateGroupeRequest struct {
	Nom         *string `json:"nom"          binding:"omitempty,min=1,max=100"`
	CapaciteMax *int    `json:"capacite_max" binding:"omitempty,min=1"`
	Actif       *bool   `json:"actif"`
}

// AffecterEtudiantRequest assigns a student to a group.
type AffecterEtudiantRequest struct {
	EtudiantID string `json:"etudiant_id" binding:"required,uuid"`
}

// ── Matieres ──

// CreateMatiereRequest creates a course.
type CreateMatiereRequest struct {
	Nom           string  `json:"nom"            binding:"required,min=2,max=100"`
	Code          string  `json:"code"           binding:"omitempty,max=10"`
	Description   string  `json:"description"    binding:"omitempty,max=500"`
	FormationID   string  `json:"formation_id"   binding:"required,uuid"`
	EnseignantID  string  `json:"enseignant_id"  binding:"omitempty,uuid"`
	TypeSeance    string  `json:"type_seance"    binding:"omitempty,oneof=CM TD_TP"`
	Coefficient   float64 `json:"coefficient"    binding:"omitempty,gt=0"`
	HeuresTotal   int     `json:"heures_total"   binding:"omitempty,min=0"`
	SeuilAbsences int     `json:"seuil_absences" binding:"omitempty,min=1"`
}

// UpdateMatiereRequest updates a course.
type UpdateMatiereRequest struct {
	Nom           *string  `json:"nom"            binding:"omitempty,min=2,max=100"`
	Code          *string  `json:"code"           binding:"omitempty,max=10"`
	Description   *string  `json:"description"    binding:"omitempty,max=500"`
	EnseignantID  *string  `json:"enseignant_id"  binding:"omitempty,uuid"`
	TypeSeance    *string  `json:"type_seance"    binding:"omitempty,oneof=CM TD_TP"`
	Coefficient   *float64 `json:"coefficient"    binding:"omitempty,gt=0"`
	HeuresTotal   *int     `json:"heures_total"   binding:"omitempty,min=0"`
	SeuilAbsences *int     `json:"seuil_absences" binding:"omitempty,min=1"`
	Actif         *bool    `json:"actif"`
}
