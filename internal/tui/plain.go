package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"commitchat/internal/wizard"
)

// ErrInterrupted is returned when input ends before the commit is generated.
var ErrInterrupted = errors.New("input ended before the commit was generated")

// RunPlain runs the interview line by line. Prompts with quick replies list
// them as numbered options; entering a number selects that option.
func RunPlain(ctx context.Context, s *wizard.Session, in io.Reader, out io.Writer) error {
	printed := 0
	flush := func() {
		msgs := s.Messages()
		for _, m := range msgs[printed:] {
			if m.Role == wizard.RoleAssistant {
				fmt.Fprintln(out, renderPlain(m))
			}
		}
		printed = len(msgs)
	}

	flush()
	scanner := bufio.NewScanner(in)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			return ErrInterrupted
		}

		line := scanner.Text()
		if b, ok := pickButton(currentButtons(s), line); ok {
			_ = s.Select(b.Value)
		} else {
			// rejected answers are reported through the transcript
			_ = s.SubmitText(line)
		}
		flush()
	}
	return nil
}

func renderPlain(m wizard.Message) string {
	var sb strings.Builder
	sb.WriteString(m.Content)
	for i, b := range m.Buttons {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, b.Label)
		if b.Description != "" {
			sb.WriteString(" - " + b.Description)
		}
	}
	return sb.String()
}

func pickButton(buttons []wizard.Button, line string) (wizard.Button, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(buttons) {
		return wizard.Button{}, false
	}
	return buttons[n-1], true
}

// currentButtons returns the quick replies of the pending prompt, if any.
func currentButtons(s *wizard.Session) []wizard.Button {
	if s.Done() {
		return nil
	}
	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != wizard.RoleAssistant {
		return nil
	}
	return last.Buttons
}
