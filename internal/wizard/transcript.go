package wizard

import "strings"

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// codeFence delimits the rendered commit inside the transcript.
const codeFence = "```"

// Button is a quick-reply option attached to a prompt. Selecting it submits
// Value as the answer.
type Button struct {
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

// Message is a single transcript entry.
type Message struct {
	Role    Role     `yaml:"role"`
	Content string   `yaml:"content"`
	Buttons []Button `yaml:"buttons,omitempty"`
}

// IsCommitBlock reports whether m holds a rendered commit.
func (m Message) IsCommitBlock() bool {
	return m.Role == RoleAssistant && strings.HasPrefix(m.Content, codeFence)
}

// CommitText returns the content with the fences removed.
func (m Message) CommitText() string {
	return strings.TrimSpace(strings.ReplaceAll(m.Content, codeFence, ""))
}

func fence(text string) string {
	return codeFence + "\n" + text + "\n" + codeFence
}

// HasFinalCommit reports whether a commit has been rendered into the
// transcript.
func (s *Session) HasFinalCommit() bool {
	for _, m := range s.messages {
		if m.IsCommitBlock() {
			return true
		}
	}
	return false
}

// LastCommitText returns the most recently rendered commit without its
// fences.
func (s *Session) LastCommitText() (string, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].IsCommitBlock() {
			return s.messages[i].CommitText(), true
		}
	}
	return "", false
}
