package model

// Book is a single recommendation card.
// Optional fields are nil when the model did not supply a usable value.
type Book struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Genre  *string  `json:"genre,omitempty"`
	Year   *float64 `json:"year,omitempty"`
	Pages  *float64 `json:"pages,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
	Reason *string  `json:"reason,omitempty"` // why this matches
}

// RecommendResponse is the success envelope
type RecommendResponse struct {
	Items []Book `json:"items"`
}

// ErrorResponse is the failure envelope. Raw carries the cleaned model
// output when the reply could not be parsed.
type ErrorResponse struct {
	Error string  `json:"error"`
	Raw   *string `json:"raw,omitempty"`
}
