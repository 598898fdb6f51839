package buildsys

import "strings"

// Step is a single invocation of an external tool: a rendered command line
// and the directory it runs in. An empty Dir means the current directory.
type Step struct {
	Name string
	Line string
	Dir  string
}

// In returns a copy of s that runs in dir.
func (s Step) In(dir string) Step {
	s.Dir = dir
	return s
}

func (s Step) String() string {
	return s.Line
}

// StripAndJoin collapses a multi-line command template into one line.
// Each line is trimmed, blank lines are dropped, and the remaining lines are
// joined with a single space. Runs of whitespace between tokens collapse to
// one space; whitespace inside double quotes is left alone.
func StripAndJoin(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, squeeze(line))
		}
	}
	return strings.Join(out, " ")
}

func squeeze(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	quoted, space := false, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t' || r == '\r'):
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Quote wraps s in double quotes the way the rendered templates expect.
func Quote(s string) string {
	return `"` + s + `"`
}
