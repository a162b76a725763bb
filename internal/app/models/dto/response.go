package dto

// MessageResponse is the generic body used for plain outcomes and for
// every error status.
type MessageResponse struct {
	Message string `json:"message"`
}
