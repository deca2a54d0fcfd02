// Package shell parses and runs single-bar pipelines.
package shell

import "strings"

// Delimiter separates the segments of a pipeline.
const Delimiter = "|"

// Segment is one program invocation between pipe delimiters.
type Segment struct {
	// Name of the program, empty if the segment had no tokens.
	Name string
	// Args holds the remaining tokens in their original order.
	Args []string
}

// Empty reports whether the segment had no tokens. Empty segments are syntax
// errors but are still produced by Parse so the executor can report them at
// the right point.
func (s Segment) Empty() bool {
	return s.Name == ""
}

// Pipeline holds segments in data-flow order: each segment's output feeds the
// next segment's input.
type Pipeline []Segment

// Parse splits line on the pipe delimiter and each piece on runs of
// whitespace. Tokens are passed through verbatim: there is no quoting,
// escaping or expansion.
func Parse(line string) Pipeline {
	pieces := strings.Split(line, Delimiter)

	out := make(Pipeline, 0, len(pieces))
	for _, piece := range pieces {
		out = append(out, parseSegment(piece))
	}
	return out
}

func parseSegment(raw string) Segment {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Segment{}
	}

	seg := Segment{Name: fields[0]}
	if len(fields) > 1 {
		seg.Args = fields[1:]
	}
	return seg
}
