package wizard

import (
	"strings"

	"commitchat/internal/core"
)

// Step indexes the question sequence. StepDone and anything past it is the
// terminal state.
type Step int

const (
	StepType Step = iota
	StepScope
	StepBreaking
	StepDescription
	StepBody
	StepIssue
	StepDone
)

var stepNames = [...]string{"type", "scope", "breaking", "description", "body", "issue", "done"}

func (s Step) String() string {
	if s < 0 {
		return "unknown"
	}
	if s >= StepDone {
		return stepNames[StepDone]
	}
	return stepNames[s]
}

// state describes one question: what to ask and how to store the answer.
// apply returning an error keeps the session on the same step.
type state struct {
	prompt  string
	buttons []Button
	apply   func(r *core.Record, answer string) error
}

var typeButtons = func() []Button {
	buttons := make([]Button, 0, len(core.CommitTypes))
	for _, t := range core.CommitTypes {
		buttons = append(buttons, Button{Label: t.Type, Value: t.Type, Description: t.Description})
	}
	return buttons
}()

var states = [...]state{
	StepType: {
		prompt:  promptType,
		buttons: typeButtons,
		apply: func(r *core.Record, answer string) error {
			r.Type = answer
			return nil
		},
	},
	StepScope: {
		prompt: promptScope,
		apply: func(r *core.Record, answer string) error {
			if answer != Skip {
				r.Scope = answer
			}
			return nil
		},
	},
	StepBreaking: {
		prompt:  promptBreaking,
		buttons: breakingButtons,
		apply: func(r *core.Record, answer string) error {
			r.Breaking = strings.ToLower(answer) == BreakingYes
			return nil
		},
	},
	StepDescription: {
		prompt: promptDescription,
		apply: func(r *core.Record, answer string) error {
			r.Description = answer
			return nil
		},
	},
	StepBody: {
		prompt: promptBody,
		apply: func(r *core.Record, answer string) error {
			if answer != Skip {
				r.Body = answer
			}
			return nil
		},
	},
	StepIssue: {
		prompt: promptIssue,
		apply: func(r *core.Record, answer string) error {
			if answer == Skip {
				return nil
			}
			issue, err := core.ParseIssues(answer)
			if err != nil {
				return err
			}
			r.Issue = issue
			return nil
		},
	},
}
