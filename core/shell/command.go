package shell

import (
	"sort"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

const (
	BuiltinCd   = "cd"
	BuiltinExit = "exit"
)

// Builtins maps the name of every shell builtin to a one line description.
var Builtins = map[string]string{
	BuiltinCd:   "Change the shell working directory.",
	BuiltinExit: "Exit the shell without waiting for running commands.",
}

// BuiltinNames returns the builtin names in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range Builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Command is a resolved segment: one of Exit, Cd or External.
type Command interface {
	command()
}

// Exit ends the shell.
type Exit struct{}

// Cd changes the working directory of the shell itself.
type Cd struct {
	Args []string
}

// External is a program run as a child process.
type External struct {
	Name string
	Args []string
}

func (Exit) command()     {}
func (Cd) command()       {}
func (External) command() {}

var (
	_ Command = Exit{}
	_ Command = Cd{}
	_ Command = External{}
)

// Resolve decides how a segment runs. Empty segments are syntax errors.
func Resolve(seg Segment) (Command, error) {
	if seg.Empty() {
		return nil, newSyntaxError()
	}

	switch seg.Name {
	case BuiltinExit:
		return Exit{}, nil
	case BuiltinCd:
		return Cd{Args: seg.Args}, nil
	default:
		return External{Name: seg.Name, Args: seg.Args}, nil
	}
}

// Run changes dir to the optional single argument, or home if none is given.
// Every "~" in the argument is replaced with home.
func (c Cd) Run(dir *WorkingDir, home string) error {
	target := "~"
	switch len(c.Args) {
	case 0:
	case 1:
		target = c.Args[0]
	default:
		return platformerrors.New(CodeBuiltinUsage, "cd: too many arguments")
	}

	target = strings.ReplaceAll(target, "~", home)
	if err := dir.Chdir(target); err != nil {
		return platformerrors.Wrap(err, CodeBuiltinOS, "cd")
	}
	return nil
}
