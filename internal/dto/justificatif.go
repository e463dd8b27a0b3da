package dto

// DeposerJustificatifRequest is the multipart form accompanying the
// uploaded document.
type DeposerJustificatifRequest struct {
	AbsenceID string `form:"absence_id" binding:"required,uuid"`
	Motif     string `form:"motif"      binding:"required,max=500"`
}

// TraiterJustificatifRequest accepts or refuses a justification.
type TraiterJustificatifRequest struct {
	Commentaire string `json:"commentaire" binding:"omitempty,max=500"`
}
