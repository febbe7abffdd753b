package prompt

import (
	"fmt"
	"strings"

	"booklens/backend/internal/model"
)

// Builder constructs prompts for the recommender
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Payload is the prompt pair sent to the collaborator
type Payload struct {
	System string
	User   string
}

// Build creates the system and user prompts for a normalized query
func (b *Builder) Build(q model.Query) Payload {
	return Payload{
		System: b.BuildSystemPrompt(),
		User:   b.BuildUserPrompt(q),
	}
}

// BuildSystemPrompt returns the constant output contract
func (b *Builder) BuildSystemPrompt() string {
	return SystemPrompt
}

// BuildUserPrompt creates the per-request instruction.
// The preferences line is only present when preferences are non-empty.
func (b *Builder) BuildUserPrompt(q model.Query) string {
	lines := []string{BuildTask(q.Mode, q.Text)}
	if q.Preferences != "" {
		lines = append(lines, fmt.Sprintf(PreferencesTemplate, q.Preferences))
	}
	lines = append(lines, JSONReminder)
	return strings.Join(lines, "\n")
}

// BuildTask selects the task wording for a mode
func BuildTask(mode model.Mode, text string) string {
	switch mode {
	case model.ModeGenre:
		return fmt.Sprintf(GenreTaskTemplate, text)
	case model.ModeDescription:
		return fmt.Sprintf(DescriptionTaskTemplate, text)
	case model.ModeTopic:
		return fmt.Sprintf(TopicTaskTemplate, text)
	default:
		// similar is rewritten before this point; anything else reads as a topic
		return fmt.Sprintf(TopicTaskTemplate, text)
	}
}
