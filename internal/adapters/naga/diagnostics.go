package naga

import (
	"regexp"
	"strconv"
	"strings"
)

// Naga reports positions either as "line L, column C: msg" or "L:C: msg".
var positionRe = regexp.MustCompile(`(?:line (\d+), column (\d+)|(\d+):(\d+)):\s*`)

// sourceMap locates global lines of concatenated source strings.
type sourceMap struct {
	// starts[i] is the global line of the first line of string i, or 0 when
	// string i is empty.
	starts []int
}

func newSourceMap(sources []string) (sourceMap, string) {
	var sb strings.Builder
	m := sourceMap{starts: make([]int, len(sources))}
	line := 1
	for i, s := range sources {
		if s == "" {
			continue
		}
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		m.starts[i] = line
		line += strings.Count(s, "\n")
		sb.WriteString(s)
	}
	return m, sb.String()
}

// locate returns the source string index and the line within it.
func (m sourceMap) locate(global int) (int, int, bool) {
	for i := len(m.starts) - 1; i >= 0; i-- {
		if m.starts[i] != 0 && m.starts[i] <= global {
			return i, global - m.starts[i] + 1, true
		}
	}
	return 0, 0, false
}

// infoLog renders a naga error in the "ERROR: <string>:<line>: msg" form of
// GLSL drivers so that callers can map it back to source files.
func (m sourceMap) infoLog(err error) string {
	msg := err.Error()
	loc := positionRe.FindStringSubmatchIndex(msg)
	if loc == nil {
		return "ERROR: " + msg + "\n"
	}

	lineStr := submatch(msg, loc, 1)
	if lineStr == "" {
		lineStr = submatch(msg, loc, 3)
	}
	global, _ := strconv.Atoi(lineStr)
	idx, local, ok := m.locate(global)
	if !ok {
		return "ERROR: " + msg + "\n"
	}

	rest := msg[:loc[0]] + msg[loc[1]:]
	return "ERROR: " + strconv.Itoa(idx) + ":" + strconv.Itoa(local) + ": " + rest + "\n"
}

func submatch(s string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return s[loc[2*n]:loc[2*n+1]]
}
