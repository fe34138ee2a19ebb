package dto

// SetTabRequest is the body of PUT /ui/tab on the local bridge.
type SetTabRequest struct {
	Tab string `json:"tab" binding:"required,oneof=overview transactions accounts categories exchange analytics"`
}
