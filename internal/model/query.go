package model

// Mode selects how the query text is interpreted
type Mode string

const (
	ModeTopic       Mode = "topic"
	ModeGenre       Mode = "genre"
	ModeDescription Mode = "description"
	// ModeSimilar is rewritten to ModeTopic before prompt assembly
	ModeSimilar Mode = "similar"
)

// ParseMode resolves a raw mode string. Unrecognized values resolve to
// ModeTopic with known=false.
func ParseMode(s string) (mode Mode, known bool) {
	switch Mode(s) {
	case ModeTopic:
		return ModeTopic, true
	case ModeGenre:
		return ModeGenre, true
	case ModeDescription:
		return ModeDescription, true
	case ModeSimilar:
		return ModeSimilar, true
	default:
		return ModeTopic, false
	}
}

// Query is a normalized recommendation request
type Query struct {
	Text        string `json:"text"`
	Mode        Mode   `json:"mode"`
	Preferences string `json:"preferences,omitempty"`
}
