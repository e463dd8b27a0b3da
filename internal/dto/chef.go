package dto

// EtudiantResume is one row of the department head's student overview.
type EtudiantResume struct {
	UserID         string  `json:"user_id"`
	NomComplet     string  `json:"nom_complet"`
	NumeroEtudiant string  `json:"numero_etudiant"`
	Email          string  `json:"email"`
	FormationID    string  `json:"formation_id"`
	FormationNom   string  `json:"formation_nom"`
	TotalAbsences  int64   `json:"total_absences"`
	TauxAbsence    float64 `json:"taux_absence"`
}
