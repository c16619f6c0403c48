package core

import "strings"

// Format renders r as a conventional commit message. The whole message is
// lower-cased.
//
// A blank line separates the header from the Refs footer only when there is
// no body; with a body, the footer follows it directly. Existing messages
// depend on this layout.
func Format(r Record) string {
	var b strings.Builder

	b.WriteString(r.Type)
	if r.Scope != "" {
		b.WriteString("(" + r.Scope + ")")
	}
	if r.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": " + r.Description)

	hasBody := r.Body != ""
	if hasBody {
		b.WriteString("\n" + r.Body)
	}

	if r.Issue != "" {
		if !hasBody {
			b.WriteString("\n")
		}
		b.WriteString("\nRefs: " + strings.Join(SplitIssues(r.Issue), ", "))
	}

	return strings.ToLower(b.String())
}
