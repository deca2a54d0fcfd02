package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	platformerrors "github.com/jmgilman/go/errors"
)

// Executor runs pipelines. Files given as Stdin, Stdout and Stderr are handed
// to children as is; the shell never copies the bytes flowing between stages.
type Executor struct {
	// Stdin feeds the first stage. nil is the null device.
	Stdin *os.File
	// Stdout receives the last stage's output.
	Stdout io.Writer
	// Stderr receives diagnostics and every stage's error output.
	Stderr io.Writer

	// Dir is the shell's working directory, shared with cd. When nil, the
	// first cd starts from the process directory.
	Dir *WorkingDir
	// Home replaces "~" in cd arguments.
	Home string
	// Env is the environment of spawned programs, nil inherits the shell's.
	Env []string

	Logger *log.Logger
}

// NewExecutor creates an executor attached to the process's standard streams.
func NewExecutor(dir *WorkingDir, home string) *Executor {
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Dir:    dir,
		Home:   home,
		Logger: log.New(io.Discard, "", 0),
	}
}

// Status describes a finished Execute call.
type Status struct {
	// Spawned is the number of children started.
	Spawned int
	// Exit is set if an exit builtin stopped the pipeline. Children were not
	// waited for and the caller should end the shell.
	Exit bool
	// Errors holds the problems reported on Stderr, in order.
	Errors []error
}

// handle is the input for the next stage. A nil file is the null device.
// Owned handles are pipe ends that the shell closes once a child holds its own
// copy.
type handle struct {
	file  *os.File
	owned bool
}

func (h *handle) release() {
	if h.owned && h.file != nil {
		_ = h.file.Close()
	}
	*h = handle{}
}

// Execute dispatches the segments of p in order and waits for every child it
// started, in start order. Failures are reported on Stderr and never abort the
// remaining segments, except a syntax error which stops dispatching.
func (e *Executor) Execute(p Pipeline) Status {
	var status Status
	var children []*exec.Cmd

	input := handle{file: e.Stdin}
	defer func() { input.release() }()

	for i, seg := range p {
		resolved, err := Resolve(seg)
		if err != nil {
			e.report(&status, err)
			break
		}

		switch cmd := resolved.(type) {
		case Exit:
			status.Spawned = len(children)
			status.Exit = true
			return status

		case Cd:
			if err := e.cd(cmd); err != nil {
				e.report(&status, err)
			}
			// cd has no output so the next stage reads nothing.
			input.release()

		case External:
			child, next, err := e.spawn(cmd, input, i == len(p)-1)
			input.release()
			input = next
			if err != nil {
				e.report(&status, err)
				continue
			}
			children = append(children, child)
		}
	}

	// Close our copy first so writers upstream of a syntax error see EOF.
	input.release()

	for _, child := range children {
		if err := child.Wait(); err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				e.logf("%v", platformerrors.Wrap(err, CodeWait, child.Path))
			}
		}
	}

	status.Spawned = len(children)
	return status
}

// spawn starts ext reading from input. Unless ext is the last stage its
// output goes to a new pipe whose read end is returned for the next stage.
// On failure the returned handle is the null device.
func (e *Executor) spawn(ext External, input handle, last bool) (*exec.Cmd, handle, error) {
	// The child inherits the process directory, which only WorkingDir.Chdir
	// changes. It stays usable even after the directory is removed.
	cmd := exec.Command(ext.Name, ext.Args...)
	if errors.Is(cmd.Err, exec.ErrDot) {
		// Programs found through a relative PATH entry run like any other.
		cmd.Err = nil
	}
	cmd.Env = e.Env
	cmd.Stderr = e.Stderr
	if input.file != nil {
		cmd.Stdin = input.file
	}

	var next handle
	var pipeWriter *os.File
	if last {
		cmd.Stdout = e.Stdout
	} else {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, handle{}, platformerrors.Wrap(err, CodeSpawn, ext.Name)
		}
		cmd.Stdout = w
		pipeWriter = w
		next = handle{file: r, owned: true}
	}

	err := cmd.Start()
	if pipeWriter != nil {
		// The child has its own copy; ours would keep the reader from seeing EOF.
		_ = pipeWriter.Close()
	}
	if err != nil {
		next.release()
		return nil, handle{}, platformerrors.Wrap(err, CodeSpawn, ext.Name)
	}

	e.logf("started %s (pid %d)", ext.Name, cmd.Process.Pid)
	return cmd, next, nil
}

// cd runs the builtin, starting from the process directory when no Dir was
// given.
func (e *Executor) cd(c Cd) error {
	if e.Dir == nil {
		dir, err := NewWorkingDir()
		if err != nil {
			return platformerrors.Wrap(err, CodeBuiltinOS, BuiltinCd)
		}
		e.Dir = dir
	}
	return c.Run(e.Dir, e.Home)
}

func (e *Executor) report(status *Status, err error) {
	status.Errors = append(status.Errors, err)
	if e.Stderr != nil {
		fmt.Fprintln(e.Stderr, Diagnostic(err))
	}
}

func (e *Executor) logf(format string, v ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, v...)
	}
}
