// Package hooks provides pre and post operation hook functionality.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-andiamo/splitter"
)

// ErrHookFailed is returned when a hook command cannot be parsed or exits with an error.
var ErrHookFailed = errors.New("hook failed")

// Hooks holds the configuration for the shell hooks run around split and join.
type Hooks struct {
	PreSplit  string `env:"PRESPLIT"  env-default:"" yaml:"presplit"`
	PostSplit string `env:"POSTSPLIT" env-default:"" yaml:"postsplit"`
	PostJoin  string `env:"POSTJOIN"  env-default:"" yaml:"postjoin"`
}

// GeneratePreSplitCmd generates the pre split command for the source file.
func (h *Hooks) GeneratePreSplitCmd(inputFile string) string {
	return strings.ReplaceAll(h.PreSplit, "%INPUTFILE%", inputFile)
}

// GeneratePostSplitCmd generates the post split command for the written manifest.
func (h *Hooks) GeneratePostSplitCmd(manifestFile string) string {
	return strings.ReplaceAll(h.PostSplit, "%MANIFEST%", manifestFile)
}

// GeneratePostJoinCmd generates the post join command for the rebuilt file.
func (h *Hooks) GeneratePostJoinCmd(outputFile string) string {
	return strings.ReplaceAll(h.PostJoin, "%OUTPUTFILE%", outputFile)
}

// HasPreSplit returns true if a pre split command is defined.
func (h *Hooks) HasPreSplit() bool {
	return h.PreSplit != ""
}

// HasPostSplit returns true if a post split command is defined.
func (h *Hooks) HasPostSplit() bool {
	return h.PostSplit != ""
}

// HasPostJoin returns true if a post join command is defined.
func (h *Hooks) HasPostJoin() bool {
	return h.PostJoin != ""
}

// ExecutePreSplit executes the pre split command.
func (h *Hooks) ExecutePreSplit(ctx context.Context, inputFile string) error {
	return execute(ctx, h.GeneratePreSplitCmd(inputFile))
}

// ExecutePostSplit executes the post split command.
func (h *Hooks) ExecutePostSplit(ctx context.Context, manifestFile string) error {
	return execute(ctx, h.GeneratePostSplitCmd(manifestFile))
}

// ExecutePostJoin executes the post join command.
func (h *Hooks) ExecutePostJoin(ctx context.Context, outputFile string) error {
	return execute(ctx, h.GeneratePostJoinCmd(outputFile))
}

// execute executes the given command.
func execute(ctx context.Context, command string) error {
	if command == "" {
		return nil
	}
	commandSplitter, err := splitter.NewSplitter(' ', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return fmt.Errorf("failed to create command splitter: %w", err)
	}
	trimmer := splitter.Trim("'\"")
	splitCmd, err := commandSplitter.Split(command, trimmer)
	if err != nil {
		return fmt.Errorf("%w: failed to parse command '%s': %w", ErrHookFailed, command, err)
	}
	if len(splitCmd) == 0 {
		return nil
	}
	//nolint:gosec // G204: Command execution with user input is intentional for hook functionality
	_, err = exec.CommandContext(ctx, splitCmd[0], splitCmd[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: failed to execute %s: %w", ErrHookFailed, command, err)
	}
	return nil
}
