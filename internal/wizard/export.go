package wizard

import (
	"fmt"

	"commitchat/internal/core"

	"gopkg.in/yaml.v3"
)

type transcriptDoc struct {
	Session  string      `yaml:"session"`
	Step     string      `yaml:"step"`
	Record   core.Record `yaml:"record"`
	Commit   string      `yaml:"commit,omitempty"`
	Messages []Message   `yaml:"messages"`
}

// MarshalTranscript renders the session state and transcript as YAML.
func (s *Session) MarshalTranscript() ([]byte, error) {
	doc := transcriptDoc{
		Session:  s.id,
		Step:     s.step.String(),
		Record:   s.record,
		Messages: s.messages,
	}
	if text, ok := s.LastCommitText(); ok {
		doc.Commit = text
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}
	return out, nil
}
