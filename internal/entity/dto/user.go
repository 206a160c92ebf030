package dto

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
