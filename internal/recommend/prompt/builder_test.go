package prompt

import (
	"strings"
	"testing"

	"booklens/backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildTaskBranches(t *testing.T) {
	tests := []struct {
		mode model.Mode
		want string
	}{
		{model.ModeGenre, `User wants books by genre. Genre query: "space opera".`},
		{model.ModeDescription, `User described the desired book(s). Description: "space opera".`},
		{model.ModeTopic, `User wants books on a topic/theme. Topic: "space opera".`},
		{model.Mode("poetry"), `User wants books on a topic/theme. Topic: "space opera".`},
		{model.Mode(""), `User wants books on a topic/theme. Topic: "space opera".`},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTask(tt.mode, "space opera"))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	b := NewBuilder()

	t.Run("without preferences", func(t *testing.T) {
		got := b.BuildUserPrompt(model.Query{Text: "stoicism", Mode: model.ModeTopic})
		assert.Equal(t,
			"User wants books on a topic/theme. Topic: \"stoicism\".\nRemember: Return ONLY valid JSON per schema.",
			got)
		assert.NotContains(t, got, "Additional preferences")
	})

	t.Run("with preferences", func(t *testing.T) {
		got := b.BuildUserPrompt(model.Query{Text: "noir", Mode: model.ModeGenre, Preferences: "short"})
		lines := strings.Split(got, "\n")
		assert.Equal(t, []string{
			`User wants books by genre. Genre query: "noir".`,
			`Additional preferences: "short".`,
			JSONReminder,
		}, lines)
	})
}

func TestBuildSystemPromptIsConstant(t *testing.T) {
	b := NewBuilder()
	p1 := b.Build(model.Query{Text: "a", Mode: model.ModeGenre})
	p2 := b.Build(model.Query{Text: "b", Mode: model.ModeDescription, Preferences: "x"})

	assert.Equal(t, p1.System, p2.System)
	assert.Contains(t, p1.System, `"books"`)
	assert.Contains(t, p1.System, "6–9 items")
	assert.Contains(t, p1.System, "No duplicates")
}
