package core

import (
	"bytes"
	"io"
)

// stdinGate passes reads through only while a prompt is active. The line
// editor reads ahead in the background; without the gate it would take
// keystrokes meant for a child reading the same terminal.
type stdinGate struct {
	r    io.Reader
	open chan struct{}
}

func newStdinGate(r io.Reader) *stdinGate {
	return &stdinGate{
		r:    r,
		open: make(chan struct{}, 1),
	}
}

// Open lets reads through until one returns a line terminator.
func (g *stdinGate) Open() {
	select {
	case g.open <- struct{}{}:
	default:
	}
}

func (g *stdinGate) Read(p []byte) (int, error) {
	<-g.open

	n, err := g.r.Read(p)
	if err != nil || !bytes.ContainsAny(p[:n], "\r\n") {
		g.Open()
	}
	return n, err
}
