package dto

// EnhanceRequest asks the assistant to improve an existing prompt.
type EnhanceRequest struct {
	Prompt string `json:"prompt"`
}

// EnhanceResponse lists up to three suggested rewrites.
type EnhanceResponse struct {
	Suggestions []string `json:"suggestions"`
}

// GeneratePromptRequest asks the assistant for a fresh prompt draft.
type GeneratePromptRequest struct {
	Topic       string `json:"topic"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// GeneratePromptResponse carries the generated draft.
type GeneratePromptResponse struct {
	Prompt string `json:"prompt"`
}
