package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var quotedPattern = regexp.MustCompile(`"([^"]*)"`)

// splitSuggestions splits free text on blank lines. When nothing survives
// trimming the whole text is returned as the only suggestion.
func splitSuggestions(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, part := range strings.Split(normalized, "\n\n") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		if whole := strings.TrimSpace(text); whole != "" {
			return []string{whole}
		}
		return []string{}
	}
	return capSuggestions(out)
}

// parseJSONSuggestions reads {"suggestions": [...]} or a bare JSON array.
// Text that is not JSON falls back to its double-quoted substrings; anything
// else yields no suggestions.
func parseJSONSuggestions(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return []string{}
	}

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return capSuggestions(quotedStrings(content))
	}

	var wrapped struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return capSuggestions(cleanSuggestions(wrapped.Suggestions))
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return capSuggestions(cleanSuggestions(list))
	}
	return []string{}
}

func quotedStrings(content string) []string {
	matches := quotedPattern.FindAllStringSubmatch(content, -1)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		if match[1] != "" {
			out = append(out, match[1])
		}
	}
	return out
}

func cleanSuggestions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func capSuggestions(values []string) []string {
	if values == nil {
		return []string{}
	}
	if len(values) > MaxSuggestions {
		return values[:MaxSuggestions]
	}
	return values
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return trimmed
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```")
	if idx := strings.Index(inner, "\n"); idx >= 0 {
		if lang := strings.TrimSpace(inner[:idx]); lang == "" || !strings.ContainsAny(lang, " {[\"") {
			inner = inner[idx+1:]
		}
	}
	return strings.TrimSpace(inner)
}
