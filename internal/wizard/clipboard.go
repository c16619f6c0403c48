package wizard

// Clipboard receives the extracted commit text.
type Clipboard interface {
	WriteAll(text string) error
}

// CopyCommit writes the last generated commit to cb and appends a
// confirmation to the transcript. Clipboard failures are logged and otherwise
// ignored. It reports whether anything was copied.
func (s *Session) CopyCommit(cb Clipboard) bool {
	text, ok := s.LastCommitText()
	if !ok {
		return false
	}
	if err := cb.WriteAll(text); err != nil {
		s.logger.Error().Err(err).Msg("Failed to copy to clipboard")
		return false
	}
	s.push(Message{Role: RoleAssistant, Content: msgCopied})
	return true
}
