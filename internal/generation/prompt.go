package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/study-notes-api/internal/domain"
)

// SystemPrompt is sent as the system turn of every completion request.
const SystemPrompt = "You are a helpful study assistant. Always respond with valid JSON only."

//go:embed prompts/study_notes.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
}

// DefaultPromptTemplate returns the built-in study notes prompt template.
func DefaultPromptTemplate() *template.Template {
	return template.Must(template.New("study_notes").Parse(defaultPromptTemplate))
}

// LoadPromptTemplate parses the template at path, or returns the built-in
// template when path is empty. The template receives a value with a single
// Topic field.
func LoadPromptTemplate(path string) (*template.Template, error) {
	if path == "" {
		return DefaultPromptTemplate(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("study_notes").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return tmpl, nil
}

// BuildPrompt renders tmpl for topic. The topic is embedded verbatim,
// without trimming or escaping.
func BuildPrompt(tmpl *template.Template, topic domain.Topic) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Topic: topic.String()}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
