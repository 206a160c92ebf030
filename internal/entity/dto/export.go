package dto

import "time"

// PromptExport is the archived snapshot of the public prompt library.
type PromptExport struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Count       int                 `json:"count"`
	Categories  []Category          `json:"categories"`
	Prompts     []PromptWithDetails `json:"prompts"`
}

// ExportResult tells the caller where the snapshot was written.
type ExportResult struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}
