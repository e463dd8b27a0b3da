package dto

// ValidateCodeRequest is a student check-in. The student identity comes
// from the access token, never from the payload.
type ValidateCodeRequest struct {
	SeanceID string `json:"seance_id" binding:"required,uuid"`
	Code     string `json:"code"      binding:"required,len=6"`
}

// CreatePresenceRequest is a manual attendance entry by staff.
type CreatePresenceRequest struct {
	SeanceID    string `json:"seance_id"   binding:"required,uuid"`
	EtudiantID  string `json:"etudiant_id" binding:"required,uuid"`
	Statut      string `json:"statut"      binding:"required,oneof=PRESENT ABSENT RETARD"`
	Commentaire string `json:"commentaire" binding:"omitempty,max=500"`
}

// UpdatePresenceRequest is a manual attendance edit by staff.
type UpdatePresenceRequest struct {
	Statut      string `json:"statut"      binding:"required,oneof=PRESENT ABSENT RETARD"`
	Commentaire string `json:"commentaire" binding:"omitempty,max=500"`
}

// StatistiquesEtudiant aggregates one student's attendance record.
type StatistiquesEtudiant struct {
	EtudiantID          string  `json:"etudiant_id"`
	NomComplet          string  `json:"nom_complet"`
	TotalSeances        int64   `json:"total_seances"`
	TotalPresences      int64   `json:"total_presences"`
	TotalAbsences       int64   `json:"total_absences"`
	TotalRetards        int64   `json:"total_retards"`
	TauxAbsence         float64 `json:"taux_absence"`
	NombreAvertissements int64  `json:"nombre_avertissements"`
}
