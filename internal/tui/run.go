package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"commitchat/internal/config"
	"commitchat/internal/git"
	"commitchat/internal/utils"
	"commitchat/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const debugLogFile = "commitchat-debug.log"

// Run interviews the user and acts on the generated commit: prints it, and
// copies or commits it when asked to.
func Run(cmd *cobra.Command, cfg config.Config) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	clip := utils.SystemClipboard{}
	interactive := !cfg.Plain && utils.IsTTY()

	// the alt screen owns the terminal, so the session logs to a file instead
	sessionLog := log.Logger
	if interactive {
		sessionLog = zerolog.Nop()
		if utils.IsDebug() {
			f, ferr := tea.LogToFile(debugLogFile, "debug")
			if ferr != nil {
				return fmt.Errorf("failed to open debug log: %w", ferr)
			}
			defer f.Close()
			sessionLog = zerolog.New(f).With().Timestamp().Logger()
		}
	}

	session := wizard.New(wizard.WithLogger(sessionLog))
	log.Debug().Str("session", session.ID()).Bool("interactive", interactive).Msg("Starting interview")

	if cfg.Transcript != "" {
		defer func() {
			if werr := writeTranscript(cfg.Transcript, session); werr != nil && err == nil {
				err = werr
			}
		}()
	}

	choice := Cancel
	if interactive {
		m := newModel(session, clip, cfg.CopyOnFinish, cfg.CommitOnFinish)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("failed to run interview: %w", err)
		}
		if fm, ok := finalModel.(model); ok {
			choice = fm.choice
		}
	} else {
		if err := RunPlain(ctx, session, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			if errors.Is(err, ErrInterrupted) {
				log.Info().Msg("Commit aborted.")
				return nil
			}
			return err
		}
		if cfg.CopyOnFinish {
			if session.CopyCommit(clip) {
				log.Info().Msg("Commit message copied to clipboard.")
			}
		}
		if cfg.CommitOnFinish {
			choice = CommitThis
		}
	}

	text, ok := session.Result()
	if !ok {
		log.Info().Msg("Commit aborted.")
		return nil
	}
	if interactive {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	if choice == CommitThis {
		sp := NewSpinner(cmd.ErrOrStderr(), interactive)
		sp.Start("Criando commit...")
		err := git.ExecuteGitCommit(ctx, ".", text)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}
		log.Info().Msg("Commit successfully created!")
	}
	return nil
}

func writeTranscript(path string, s *wizard.Session) error {
	data, err := s.MarshalTranscript()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write transcript %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("Transcript written")
	return nil
}
