package llm

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const logSnippetLimit = 120

// RequestIDKey is the context key under which the HTTP layer stores the
// request id so provider logs can be correlated with access logs.
type RequestIDKey struct{}

func providerLogger(ctx context.Context, providerID, model string) *logrus.Entry {
	fields := logrus.Fields{
		"provider": providerID,
	}
	if trimmedModel := strings.TrimSpace(model); trimmedModel != "" {
		fields["model"] = trimmedModel
	}

	if ctx != nil {
		if id, ok := ctx.Value(RequestIDKey{}).(string); ok && id != "" {
			fields["request_id"] = id
		}
	}

	entry := logrus.WithFields(fields)
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	return entry
}

func logSnippet(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	runes := []rune(value)
	if len(runes) <= logSnippetLimit {
		return value
	}

	return string(runes[:logSnippetLimit]) + "..."
}
