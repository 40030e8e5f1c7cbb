package domain

import "strings"

// SourceChunk is a contiguous run of shader text from one file.
// LineOffset is the number of lines in File that precede the chunk.
type SourceChunk struct {
	File       InternedString
	LineOffset int
	Source     string
}

// NewSourceChunk creates a chunk for the logical path file.
func NewSourceChunk(file string, lineOffset int, source string) SourceChunk {
	return SourceChunk{
		File:       NewInternedString(file),
		LineOffset: lineOffset,
		Source:     source,
	}
}

// JoinSources concatenates the text of chunks in order.
func JoinSources(chunks []SourceChunk) string {
	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Source)
	}
	return sb.String()
}
