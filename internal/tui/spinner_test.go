package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_NonTTY(t *testing.T) {
	out := &bytes.Buffer{}
	s := NewSpinner(out, false)
	s.Start("Criando commit...")
	s.Stop()
	assert.Equal(t, "⏺ Criando commit...\n", out.String())
}

func TestSpinnerModel_Done(t *testing.T) {
	s := NewSpinner(&bytes.Buffer{}, false)
	next, cmd := s.model.Update(doneMsg{duration: 1500000000})
	m := next.(spinnerModel)
	assert.Equal(t, "done", m.state)
	assert.Contains(t, m.View(), "1.50s")
	assert.NotNil(t, cmd)
}
