package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to apply for a building permit", "English"},
		{"", "English"},
		{"मुझे भवन निर्माण की अनुमति चाहिए", "Hindi"},
		{"আমি একটি অভিযোগ জানাতে চাই", "Bengali"},
		{"எனது விண்ணப்ப நிலை என்ன", "Tamil"},
		{"Permit के लिए apply करना है", "Hindi"}, // mixed: dominant script wins
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.message), "message=%q", tt.message)
	}
}

func TestBuildLanguagePrompt(t *testing.T) {
	prompt := BuildLanguagePrompt("Hindi", "my message")
	assert.Contains(t, prompt, "Language: Hindi")
	assert.Contains(t, prompt, "my message")
	assert.Contains(t, prompt, "Respond in the same language.")

	assert.Contains(t, BuildLanguagePrompt("", "x"), "Language: English")
}

func TestComposePromptOrdering(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "second"},
		{Role: RoleUser, Content: "third"},
	}
	prompt := ComposePrompt(history, "English", "current question")

	assert.Len(t, prompt, 5)
	assert.Equal(t, RoleSystem, prompt[0].Role)
	assert.True(t, strings.Contains(prompt[0].Content, "governance assistant"))
	assert.Equal(t, history, prompt[1:4])
	assert.Equal(t, RoleUser, prompt[4].Role)
	assert.Contains(t, prompt[4].Content, "current question")
}

func TestComposePromptEmptyHistory(t *testing.T) {
	prompt := ComposePrompt(nil, "English", "hello")
	assert.Len(t, prompt, 2)
	assert.Equal(t, RoleSystem, prompt[0].Role)
	assert.Equal(t, RoleUser, prompt[1].Role)
}
