package shell

import (
	"os"
	"path/filepath"
)

// WorkingDir is the shell's current directory. The directory is process wide;
// Chdir is the only place the shell changes it.
type WorkingDir struct {
	path string
}

// NewWorkingDir starts from the process's current directory.
func NewWorkingDir() (*WorkingDir, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &WorkingDir{path: wd}, nil
}

// Path returns the current directory.
func (w *WorkingDir) Path() string {
	return w.path
}

// Chdir changes the process directory. On failure nothing changes.
func (w *WorkingDir) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return err
	}

	if wd, err := os.Getwd(); err == nil {
		w.path = wd
	} else if filepath.IsAbs(dir) {
		w.path = filepath.Clean(dir)
	} else {
		w.path = filepath.Join(w.path, dir)
	}
	return nil
}
