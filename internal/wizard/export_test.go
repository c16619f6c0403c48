package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalTranscript(t *testing.T) {
	s := newTestSession()
	answerAll(t, s, "chore", "-", "não", "bump deps", "-", "7")

	data, err := s.MarshalTranscript()
	require.NoError(t, err)

	var doc transcriptDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, s.ID(), doc.Session)
	assert.Equal(t, "done", doc.Step)
	assert.Equal(t, s.Record(), doc.Record)
	assert.Equal(t, "chore: bump deps\n\nrefs: 7", doc.Commit)
	require.Len(t, doc.Messages, len(s.Messages()))
	assert.Len(t, doc.Messages[0].Buttons, 7)
	assert.Equal(t, RoleUser, doc.Messages[1].Role)
}

func TestMarshalTranscript_Unfinished(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SubmitText("fix"))

	data, err := s.MarshalTranscript()
	require.NoError(t, err)
	assert.Contains(t, string(data), "step: scope")
	assert.NotContains(t, string(data), "commit:")
}
