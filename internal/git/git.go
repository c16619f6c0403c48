package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNothingStaged = errors.New("nothing staged to commit")

// HasStagedChanges reports whether the index differs from HEAD in dir.
func HasStagedChanges(ctx context.Context, dir string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	cmd.Dir = dir
	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("git diff failed: %w", err)
}

// ExecuteGitCommit commits the staged changes in dir with message, passed on
// stdin so multi-line bodies survive unchanged.
func ExecuteGitCommit(ctx context.Context, dir, message string) error {
	staged, err := HasStagedChanges(ctx, dir)
	if err != nil {
		return err
	}
	if !staged {
		return ErrNothingStaged
	}

	cmd := exec.CommandContext(ctx, "git", "commit", "-F", "-")
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(message)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w\nOutput: %s", err, out.String())
	}
	log.Debug().Str("dir", dir).Msg("Commit created")
	return nil
}
