// Package naming derives short, filesystem-safe project slugs from free-text
// requests, preferring the external capability with a deterministic local
// fallback.
package naming

import (
	"context"
	"regexp"
	"strings"

	"github.com/squadhq/squad/internal/capability"
)

// namingInstruction is the fixed system instruction for the naming call.
const namingInstruction = `You are a project naming assistant. Your task is to analyze user requirements and suggest a concise, descriptive project name.

Rules for project names:
1. Use only lowercase letters, numbers, and underscores
2. Keep it between 2-4 words maximum
3. Make it descriptive but concise
4. Avoid common words like 'app', 'system', 'project' unless essential
5. Focus on the core functionality or domain

Examples:
- "Create a todo list app" → "todo_list"
- "Build an e-commerce website for selling books" → "book_store"
- "Develop a chat application with real-time messaging" → "realtime_chat"
- "Create a weather dashboard with forecasts" → "weather_dashboard"

Respond with ONLY the suggested project name, no explanations or additional text.`

// stopWords are dropped when extracting fallback title words.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {}, "i": {}, "want": {},
	"need": {}, "can": {}, "would": {}, "like": {}, "please": {}, "help": {},
	"me": {}, "my": {}, "we": {}, "us": {}, "our": {},
}

var (
	invalidChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	alphaWords   = regexp.MustCompile(`[a-zA-Z]+`)
)

// maxTitleLen bounds the slug length.
const maxTitleLen = 50

// SuggestTitle derives a project slug for a request. It asks the capability
// with the fixed naming instruction and sanitizes the answer; on any
// capability error, or when sanitizing leaves nothing, it falls back to
// FallbackTitle. Capability errors never surface to the caller.
func SuggestTitle(ctx context.Context, invoker capability.Invoker, requestText string) string {
	if invoker != nil {
		response, err := invoker.Invoke(ctx, namingInstruction, "Generate a project name for: "+requestText)
		if err == nil {
			title := Sanitize(strings.ToLower(strings.TrimSpace(response)))
			if title != "" {
				return title
			}
		}
	}

	return FallbackTitle(requestText)
}

// FallbackTitle derives a slug locally: alphabetic words minus stop words,
// first four joined by underscores, or the literal "project" if none remain.
func FallbackTitle(requestText string) string {
	words := alphaWords.FindAllString(strings.ToLower(requestText), -1)

	var meaningful []string
	for _, w := range words {
		if _, skip := stopWords[w]; skip {
			continue
		}
		meaningful = append(meaningful, w)
		if len(meaningful) == 4 {
			break
		}
	}

	title := "project"
	if len(meaningful) > 0 {
		title = strings.Join(meaningful, "_")
	}

	return Sanitize(title)
}

// Sanitize strips any character outside [A-Za-z0-9_-] and truncates the
// result to 50 characters.
func Sanitize(s string) string {
	cleaned := invalidChars.ReplaceAllString(s, "")
	if len(cleaned) > maxTitleLen {
		cleaned = cleaned[:maxTitleLen]
	}
	return cleaned
}
