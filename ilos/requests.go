package ilos

type UpdateStatusRequest struct {
	LosID           string `json:"losId"`
	Status          string `json:"status"`
	ApplicationType string `json:"applicationType"`
}

type UpdateCommentRequest struct {
	LosID       string `json:"losId"`
	FieldName   string `json:"fieldName"`
	CommentText string `json:"commentText"`
}

type CustomerStatusRequest struct {
	CNIC string `json:"cnic"`
}

// StatusUpdate is one entry in a batch status update.
type StatusUpdate struct {
	LosID           string
	Status          string
	ApplicationType string
}
