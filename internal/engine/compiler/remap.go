package compiler

import (
	"regexp"
	"strconv"

	"go.trai.ch/hdrview/internal/core/domain"
)

var (
	// "ERROR: 2:10: ..." as printed by Intel and Mesa style drivers.
	colonRefRe = regexp.MustCompile(`(?m)^(ERROR|WARNING):\s*(\d+):(\d+)`)
	// "2(10) : error ..." as printed by NVIDIA style drivers.
	parenRefRe = regexp.MustCompile(`(?m)^(\d+)\((\d+)\)`)
)

// RemapDiagnostics rewrites source string references in a driver log into
// "path(line)" using the chunk each string was built from. String n refers to
// chunks[n-1]; string 0 is the preamble. References that do not name a chunk
// are left as they are.
func RemapDiagnostics(log string, chunks []domain.SourceChunk) string {
	log = colonRefRe.ReplaceAllStringFunc(log, func(m string) string {
		sub := colonRefRe.FindStringSubmatch(m)
		ref, ok := resolve(sub[2], sub[3], chunks)
		if !ok {
			return m
		}
		return sub[1] + ": " + ref
	})
	return parenRefRe.ReplaceAllStringFunc(log, func(m string) string {
		sub := parenRefRe.FindStringSubmatch(m)
		ref, ok := resolve(sub[1], sub[2], chunks)
		if !ok {
			return m
		}
		return ref
	})
}

func resolve(index, line string, chunks []domain.SourceChunk) (string, bool) {
	n, err := strconv.Atoi(index)
	if err != nil || n < 1 || n > len(chunks) {
		return "", false
	}
	l, err := strconv.Atoi(line)
	if err != nil {
		return "", false
	}
	c := chunks[n-1]
	return c.File.String() + "(" + strconv.Itoa(l+c.LineOffset) + ")", true
}
