package dto

// CreateAvertissementRequest is a manual warning entered by staff.
type CreateAvertissementRequest struct {
	EtudiantID     string `json:"etudiant_id"     binding:"required,uuid"`
	MatiereID      string `json:"matiere_id"      binding:"required,uuid"`
	NombreAbsences int    `json:"nombre_absences" binding:"required,min=1"`
	Motif          string `json:"motif"           binding:"required,max=1000"`
}

// UpdateMotifRequest rewords a warning.
type UpdateMotifRequest struct {
	Motif string `json:"motif" binding:"required,max=1000"`
}
