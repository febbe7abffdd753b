package response

import (
	"booklens/backend/internal/model"
	"booklens/backend/internal/recommend/sanitize"
)

// Books filters and coerces the raw "books" array.
// Items without a truthy title and author are dropped before the cap is
// applied, so the cap counts usable books only. Order is preserved.
func Books(raw []any) []model.Book {
	items := make([]model.Book, 0, min(len(raw), MaxItems))
	for _, entry := range raw {
		if len(items) == MaxItems {
			break
		}
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if !sanitize.Truthy(obj["title"]) || !sanitize.Truthy(obj["author"]) {
			continue
		}
		items = append(items, toBook(obj))
	}
	return items
}

func toBook(obj map[string]any) model.Book {
	return model.Book{
		Title:  sanitize.String(obj["title"]),
		Author: sanitize.String(obj["author"]),
		Genre:  optionalString(obj["genre"]),
		Year:   optionalNumber(obj["year"]),
		Pages:  optionalNumber(obj["pages"]),
		Rating: optionalNumber(obj["rating"]),
		Reason: optionalString(obj["reason"]),
	}
}

// optionalString keeps truthy values only
func optionalString(v any) *string {
	if !sanitize.Truthy(v) {
		return nil
	}
	s := sanitize.String(v)
	return &s
}

// optionalNumber keeps truthy values that read as a finite number
func optionalNumber(v any) *float64 {
	if !sanitize.Truthy(v) {
		return nil
	}
	n, ok := sanitize.Number(v)
	if !ok {
		return nil
	}
	return &n
}
