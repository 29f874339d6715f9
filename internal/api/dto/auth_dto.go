package dto

// TokenRequest payload for POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SuccessResponse acknowledges credential operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
