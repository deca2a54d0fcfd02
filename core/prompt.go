package core

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// DefaultPrompt shows the user, the host and the last element of the working
// directory.
const DefaultPrompt = `\u@\h:\W> `

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-8][0-8]?[0-8]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)

	userHostColor = []color.Attribute{color.FgGreen, color.Bold}
	dirColor      = []color.Attribute{color.FgBlue, color.Bold}
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// PromptData holds the values a prompt template can show.
type PromptData struct {
	User     string
	Hostname string
	Home     string
	Dir      string
}

// tildeDir shows the home directory, and anything under it, relative to ~.
func (p PromptData) tildeDir() string {
	home := strings.TrimSuffix(p.Home, "/")
	switch {
	case p.Home == "":
		return p.Dir
	case p.Dir == p.Home:
		return "~"
	case home != "" && strings.HasPrefix(p.Dir, home+"/"):
		return "~" + strings.TrimPrefix(p.Dir, home)
	default:
		return p.Dir
	}
}

// RenderPrompt expands the escapes in template, DefaultPrompt if empty. When
// colored is set the user and host are bold green and directories bold blue.
func RenderPrompt(template string, data PromptData, colored bool) string {
	if template == "" {
		template = DefaultPrompt
	}

	paint := func(attrs []color.Attribute, s string) string {
		if !colored {
			return s
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(s)
	}

	prompt := strings.NewReplacer(
		`\u`, paint(userHostColor, data.User),
		`\h`, paint(userHostColor, data.Hostname),
		`\w`, paint(dirColor, data.tildeDir()),
		`\W`, paint(dirColor, filepath.Base(data.Dir)),
	).Replace(template)

	return unescape(prompt)
}
