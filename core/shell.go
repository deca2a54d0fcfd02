package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/shell"
	"golang.org/x/term"
)

const defaultWidth = 80

// Shell is the interactive loop around a pipeline executor.
type Shell struct {
	Executor *shell.Executor
	Identity config.Identity
	Config   *config.Configuration
	Logger   *log.Logger

	// IsTerminal reports whether the shell talks to a terminal. It decides
	// line editing and, with the "auto" color setting, prompt colors.
	IsTerminal func() bool
}

// NewShell creates a shell attached to the process's standard streams and
// current directory.
func NewShell(cfg *config.Configuration, id *config.Identity, logger *log.Logger) (*Shell, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	dir, err := shell.NewWorkingDir()
	if err != nil {
		return nil, err
	}

	executor := shell.NewExecutor(dir, id.Home)
	executor.Logger = logger

	return &Shell{
		Executor:   executor,
		Identity:   *id,
		Config:     cfg,
		Logger:     logger,
		IsTerminal: stdioIsTerminal,
	}, nil
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func screenWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Prompt renders the configured prompt for the current directory.
func (s *Shell) Prompt() string {
	data := PromptData{
		User:     s.Identity.User,
		Hostname: s.Identity.Hostname,
		Home:     s.Identity.Home,
		Dir:      s.Executor.Dir.Path(),
	}
	return RenderPrompt(s.Config.Prompt, data, s.Config.ShouldColor(s.IsTerminal()))
}

// RunCommand runs one line of input. Blank lines do nothing.
func (s *Shell) RunCommand(line string) shell.Status {
	line = strings.TrimSpace(line)
	if line == "" {
		return shell.Status{}
	}

	pipeline := shell.Parse(line)
	s.Logger.Printf("running %d segment(s): %q", len(pipeline), line)
	return s.Executor.Execute(pipeline)
}

// Run prompts for and runs lines until input ends or a pipeline runs exit.
func (s *Shell) Run() error {
	if s.Executor.Stdin == nil {
		return errors.New("no input to read commands from")
	}
	gate := newStdinGate(s.Executor.Stdin)

	cfg := &readline.Config{
		Stdin:          readline.NewCancelableStdin(gate),
		Stdout:         s.Executor.Stdout,
		Stderr:         s.Executor.Stderr,
		FuncGetWidth:   screenWidth,
		FuncIsTerminal: s.IsTerminal,
	}

	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(s.Prompt())
		gate.Open()
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if s.RunCommand(line).Exit {
			return nil
		}
	}
}
