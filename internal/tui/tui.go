package tui

import (
	"fmt"
	"io"
	"strings"

	"commitchat/internal/wizard"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, help and status lines around the transcript
	chromeLines = 4
)

type MenuAction int

const (
	CopyToClipboard MenuAction = iota
	CommitThis
	StartOver
	Cancel
)

type item struct {
	title  string
	desc   string
	value  string
	action MenuAction
}

func (i item) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := i.title
	if i.desc != "" {
		str += dimStyle.Render(" · " + i.desc)
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

var menuItems = []list.Item{
	item{title: "📋 Copiar para a área de transferência", action: CopyToClipboard},
	item{title: "✅ Fazer o commit", action: CommitThis},
	item{title: "🔄 Recomeçar", action: StartOver},
	item{title: "❌ Sair", action: Cancel},
}

type model struct {
	session  *wizard.Session
	clip     wizard.Clipboard
	autoCopy bool

	viewport viewport.Model
	input    textinput.Model
	replies  list.Model
	menu     list.Model

	focusReplies bool
	copied       bool
	status       string
	choice       MenuAction
	quitting     bool
	width        int
	height       int
}

func newList(items []list.Item) list.Model {
	l := list.New(items, itemDelegate{}, defaultWidth, len(items)+1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newModel(s *wizard.Session, clip wizard.Clipboard, autoCopy, commitFirst bool) model {
	in := textinput.New()
	in.Placeholder = "Digite sua resposta"
	in.CharLimit = 500
	in.Width = defaultWidth - 4

	menu := newList(menuItems)
	if commitFirst {
		menu.Select(int(CommitThis))
	}

	m := model{
		session:  s,
		clip:     clip,
		autoCopy: autoCopy,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeLines),
		input:    in,
		replies:  newList(nil),
		menu:     menu,
		choice:   Cancel,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.sync()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.choice = Cancel
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			m.session.Reset()
			m.copied = false
			m.status = ""
			m.sync()
			return m, nil

		case "ctrl+y":
			m.copy()
			m.sync()
			return m, nil

		case "tab":
			if !m.session.Done() && len(m.replies.Items()) > 0 {
				m.setFocus(!m.focusReplies)
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case "enter":
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	switch {
	case m.session.Done():
		m.menu, cmd = m.menu.Update(msg)
	case m.focusReplies:
		m.replies, cmd = m.replies.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	if m.session.Done() {
		i, ok := m.menu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch i.action {
		case CopyToClipboard:
			m.copy()
		case CommitThis:
			m.choice = CommitThis
			m.quitting = true
			return m, tea.Quit
		case StartOver:
			m.session.Reset()
			m.copied = false
			m.status = ""
		case Cancel:
			m.choice = Cancel
			m.quitting = true
			return m, tea.Quit
		}
		m.sync()
		return m, nil
	}

	// rejected answers already show up in the transcript
	if m.focusReplies {
		if i, ok := m.replies.SelectedItem().(item); ok {
			_ = m.session.Select(i.value)
		}
	} else {
		_ = m.session.SubmitText(m.input.Value())
		m.input.Reset()
	}
	m.sync()
	return m, nil
}

func (m *model) copy() {
	if !m.session.HasFinalCommit() {
		return
	}
	if m.session.CopyCommit(m.clip) {
		m.copied = true
		m.status = ""
		return
	}
	m.status = "Não foi possível copiar para a área de transferência"
}

func (m *model) setFocus(replies bool) {
	m.focusReplies = replies
	if replies {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
}

// sync rebuilds the quick replies and transcript view from the session.
func (m *model) sync() {
	buttons := currentButtons(m.session)
	items := make([]list.Item, 0, len(buttons))
	for _, b := range buttons {
		items = append(items, item{title: b.Label, desc: b.Description, value: b.Value})
	}
	m.replies.SetItems(items)
	m.replies.Select(0)
	m.setFocus(len(items) > 0)

	if m.session.Done() && m.autoCopy && !m.copied {
		m.copy()
	}
	m.refresh()
}

func (m *model) refresh() {
	m.layout()
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *model) layout() {
	bottom := 1
	switch {
	case m.session.Done():
		bottom = len(menuItems)
	case len(m.replies.Items()) > 0:
		bottom += len(m.replies.Items())
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(3, m.height-bottom-chromeLines)
	m.replies.SetSize(m.width, len(m.replies.Items())+1)
	m.menu.SetSize(m.width, len(menuItems)+1)
	m.input.Width = max(10, m.width-4)
}

func (m model) renderTranscript() string {
	width := max(20, m.width-2)
	var sb strings.Builder
	for _, msg := range m.session.Messages() {
		switch {
		case msg.Role == wizard.RoleUser:
			sb.WriteString(userStyle.Render(msg.Content))
		case msg.IsCommitBlock():
			sb.WriteString(commitStyle.Render(msg.CommitText()))
		case strings.HasPrefix(msg.Content, "❌"):
			sb.WriteString(errorStyle.Width(width).Render(msg.Content))
		default:
			sb.WriteString(assistantStyle.Width(width).Render(msg.Content))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m model) View() string {
	if m.quitting {
		return quitTextStyle.Render("Saindo...")
	}

	header := titleStyle.Render("commitchat") +
		dimStyle.Render(fmt.Sprintf(" passo %d/%d", min(int(m.session.Step())+1, int(wizard.StepDone)), int(wizard.StepDone)))

	var bottom string
	switch {
	case m.session.Done():
		bottom = m.menu.View()
	case len(m.replies.Items()) > 0:
		bottom = m.replies.View() + "\n" + m.input.View()
	default:
		bottom = m.input.View()
	}

	help := dimStyle.Render("enter: enviar · tab: botões/texto · ctrl+y: copiar · ctrl+r: recomeçar · esc: sair")

	return strings.Join([]string{
		header,
		m.viewport.View(),
		bottom,
		errorStyle.Render(m.status),
		help,
	}, "\n")
}
