package dto

// Tag is the DTO representation of a tag.
type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagCreateRequest is the payload for creating a tag.
type TagCreateRequest struct {
	Name string `json:"name"`
}
