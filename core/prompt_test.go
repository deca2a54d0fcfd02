package core

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func ExampleRenderPrompt() {
	data := PromptData{User: "alice", Hostname: "box", Home: "/home/alice", Dir: "/home/alice/src"}

	fmt.Println(RenderPrompt(`\u@\h:\W`, data, false))
	fmt.Println(RenderPrompt(`\w$`, data, false))

	// Output: alice@box:src
	// ~/src$
}

func TestRenderPrompt(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden", "TestRenderPrompt")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	data := PromptData{
		User:     "alice",
		Hostname: "box",
		Home:     "/home/alice",
		Dir:      "/home/alice/src/pipesh",
	}

	cases := map[string]struct {
		template string
		colored  bool
	}{
		"default":         {"", false},
		"default-colored": {"", true},
		"full-path":       {`[\u@\h \w]\n> `, false},
		"octal-color":     {`\033[01;32m\u\033[00m> `, false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, tn, []byte(RenderPrompt(tc.template, data, tc.colored)))
		})
	}
}

func TestPromptData_tildeDir(t *testing.T) {
	cases := []struct {
		home     string
		dir      string
		expected string
	}{
		{"/home/alice", "/home/alice", "~"},
		{"/home/alice", "/home/alice/src", "~/src"},
		{"/home/alice/", "/home/alice/src", "~/src"},
		{"/home/al", "/home/alice", "/home/alice"},
		{"/home/alice", "/tmp", "/tmp"},
		{"/", "/", "~"},
		{"/", "/usr", "/usr"},
		{"", "/usr", "/usr"},
	}

	for _, tc := range cases {
		data := PromptData{Home: tc.home, Dir: tc.dir}
		assert.Equal(t, tc.expected, data.tildeDir(), "home=%q dir=%q", tc.home, tc.dir)
	}
}

func TestRenderPrompt_baseName(t *testing.T) {
	cases := map[string]string{
		"/":            "/",
		"/usr":         "usr",
		"/usr/local/":  "local",
		"/home/alice":  "alice",
		"relative/dir": "dir",
	}

	for dir, expected := range cases {
		actual := RenderPrompt(`\W`, PromptData{Dir: dir}, false)
		assert.Equal(t, expected, actual, "dir=%q", dir)
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
	}{
		{"not escaped", "not escaped"},
		{`newline\n`, "newline\n"},
		{`double-escape\\n`, `double-escape\n`},
		// Octal
		{`\07`, string(rune(7))},
		{`\011`, "\t"},
		{`\033`, "\x1b"},
		// Hex
		{`\x7`, string(rune(07))},
		{`\x1b`, "\x1b"},
		{`\x4A`, "J"},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			assert.Equal(t, tc.expected, unescape(tc.escaped))
		})
	}
}
