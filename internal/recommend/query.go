package recommend

import (
	"encoding/json"
	"fmt"

	"booklens/backend/internal/model"
	"booklens/backend/internal/recommend/prompt"
	"booklens/backend/internal/recommend/sanitize"
)

// ParseQuery normalizes a raw request body.
// A missing or unparsable body is read as an empty object, so the only
// failure is empty text.
func ParseQuery(body []byte) (model.Query, error) {
	fields := decodeBody(body)

	text := sanitize.Field(fields["text"])
	if text == "" {
		return model.Query{}, ErrTextRequired
	}

	mode := model.ModeTopic
	if raw, ok := fields["mode"]; ok && raw != nil {
		mode, _ = model.ParseMode(sanitize.String(raw))
	}

	q := model.Query{
		Text:        text,
		Mode:        mode,
		Preferences: sanitize.Field(fields["preferences"]),
	}
	return rewriteSimilar(q), nil
}

// decodeBody returns the top-level object of body, or an empty map
func decodeBody(body []byte) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}

// rewriteSimilar turns a "similar" query into a topic query
func rewriteSimilar(q model.Query) model.Query {
	if q.Mode != model.ModeSimilar {
		return q
	}
	q.Mode = model.ModeTopic
	q.Text = fmt.Sprintf(prompt.SimilarTextTemplate, q.Text)
	return q
}
