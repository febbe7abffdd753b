package response

import (
	"encoding/json"
	"regexp"
	"strings"

	"booklens/backend/internal/model"
	"booklens/backend/internal/recommend/sanitize"
)

// MaxItems caps the number of books returned per request
const MaxItems = 9

var (
	// non-greedy; (?s) lets a trace span lines
	thinkRegex = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// Result is the outcome of sanitizing a model reply.
// OK is false when the reply held no {"books": [...]} object; Cleaned is
// always set so callers can attach it for diagnostics.
type Result struct {
	Items   []model.Book
	Cleaned string
	OK      bool
}

// Parse runs the full sanitization pass over a raw model reply
func Parse(raw string) Result {
	cleaned := Clean(raw)

	parsed, ok := ExtractJSON(cleaned)
	if !ok {
		return Result{Cleaned: cleaned}
	}

	books, ok := booksField(parsed)
	if !ok {
		return Result{Cleaned: cleaned}
	}

	return Result{
		Items:   Books(books),
		Cleaned: cleaned,
		OK:      true,
	}
}

// Clean removes reasoning traces and code fences, then trims.
// Stripping repeats until nothing changes, since removing one marker can
// join the halves of another (e.g. "<thi```nk>").
func Clean(text string) string {
	result := text
	for {
		next := StripFences(StripThinking(result))
		if next == result {
			break
		}
		result = next
	}
	return sanitize.Text(result)
}

// StripThinking removes every <think>...</think> span.
// An unterminated <think> is left untouched.
func StripThinking(text string) string {
	return thinkRegex.ReplaceAllString(text, "")
}

// StripFences removes ```json openers and any remaining ``` tokens.
// This is plain substitution; fenced content is kept as-is.
func StripFences(text string) string {
	result := strings.ReplaceAll(text, jsonFence, fence)
	return strings.ReplaceAll(result, fence, "")
}

// ExtractJSON parses text strictly, then falls back to the span between
// the first '{' and the last '}'.
func ExtractJSON(text string) (any, bool) {
	if v, ok := decode(text); ok {
		return v, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	return decode(text[start : end+1])
}

func decode(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// booksField returns the "books" array of a decoded object
func booksField(v any) ([]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	books, ok := obj["books"].([]any)
	if !ok {
		return nil, false
	}
	return books, true
}
