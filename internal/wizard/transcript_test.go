package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text  string
	calls int
	err   error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestMessage_IsCommitBlock(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want bool
	}{
		{"assistant fenced", Message{Role: RoleAssistant, Content: "```\nfeat: x\n```"}, true},
		{"assistant fence with space", Message{Role: RoleAssistant, Content: "``` \nfeat: x\n```"}, true},
		{"user fenced", Message{Role: RoleUser, Content: "```\nfeat: x\n```"}, false},
		{"assistant plain", Message{Role: RoleAssistant, Content: msgGenerated}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.IsCommitBlock())
		})
	}
}

func TestLastCommitText_Absent(t *testing.T) {
	s := newTestSession()
	_, ok := s.LastCommitText()
	assert.False(t, ok)
	assert.False(t, s.HasFinalCommit())
}

func TestLastCommitText_PicksMostRecent(t *testing.T) {
	s := newTestSession()
	s.push(Message{Role: RoleAssistant, Content: fence("feat: first")})
	s.push(Message{Role: RoleAssistant, Content: "between"})
	s.push(Message{Role: RoleAssistant, Content: fence("  fix: second\n")})
	s.push(Message{Role: RoleUser, Content: fence("chore: from user")})

	text, ok := s.LastCommitText()
	require.True(t, ok)
	assert.Equal(t, "fix: second", text)
	assert.True(t, s.HasFinalCommit())
}

func TestCopyCommit(t *testing.T) {
	s := newTestSession()
	cb := &fakeClipboard{}

	assert.False(t, s.CopyCommit(cb))
	assert.Zero(t, cb.calls)

	answerAll(t, s, "docs", "-", "não", "update readme", "clarify install steps", "42,43")
	before := len(s.Messages())

	assert.True(t, s.CopyCommit(cb))
	assert.Equal(t, "docs: update readme\nclarify install steps\nrefs: 42, 43", cb.text)

	msgs := s.Messages()
	require.Len(t, msgs, before+1)
	assert.Equal(t, msgCopied, msgs[before].Content)

	// the confirmation does not hide the commit from later copies
	assert.True(t, s.CopyCommit(cb))
	assert.Equal(t, 2, cb.calls)
}

func TestCopyCommit_FailureIsSwallowed(t *testing.T) {
	s := newTestSession()
	answerAll(t, s, "feat", "-", "não", "add login", "-", "-")
	before := s.Messages()

	cb := &fakeClipboard{err: errors.New("no clipboard utility")}
	assert.False(t, s.CopyCommit(cb))
	assert.Equal(t, 1, cb.calls)
	assert.Equal(t, before, s.Messages())
	assert.True(t, s.Done())
}
