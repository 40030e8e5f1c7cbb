package compiler_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/engine/compiler"
)

func testChunks() []domain.SourceChunk {
	return []domain.SourceChunk{
		domain.NewSourceChunk("common.glsl", 0, "a\n"),
		domain.NewSourceChunk("foo.glsl", 5, "b\n"),
		domain.NewSourceChunk("bar.glsl", 20, "c\n"),
	}
}

func TestRemapDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want string
	}{
		{
			name: "colon reference",
			log:  "ERROR: 2:10: 'x' : undeclared identifier",
			want: "ERROR: foo.glsl(15): 'x' : undeclared identifier",
		},
		{
			name: "warning",
			log:  "WARNING: 1:7: implicit cast",
			want: "WARNING: common.glsl(7): implicit cast",
		},
		{
			name: "paren reference",
			log:  "3(2) : error C1008: undefined variable",
			want: "bar.glsl(22) : error C1008: undefined variable",
		},
		{
			name: "preamble is left alone",
			log:  "ERROR: 0:1: bad version",
			want: "ERROR: 0:1: bad version",
		},
		{
			name: "out of range is left alone",
			log:  "ERROR: 9:1: nowhere",
			want: "ERROR: 9:1: nowhere",
		},
		{
			name: "unrecognised format passes through",
			log:  "error: something went wrong at 2:10",
			want: "error: something went wrong at 2:10",
		},
		{
			name: "every line is rewritten",
			log:  "ERROR: 2:1: a\nERROR: 2:2: b\n",
			want: "ERROR: foo.glsl(6): a\nERROR: foo.glsl(7): b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.RemapDiagnostics(tt.log, testChunks()))
		})
	}
}

func TestRemapDiagnostics_Golden(t *testing.T) {
	log := "ERROR: 0:1: 'version' : bad profile\n" +
		"ERROR: 2:10: 'foo' : undeclared identifier\n" +
		"WARNING: 1:3: unused variable\n" +
		"3(4) : error C0000: syntax error\n" +
		"7(1) : error C0001: out of range\n" +
		"driver crashed politely\n"

	g := goldie.New(t)
	g.Assert(t, "remap_mixed_vendors", []byte(compiler.RemapDiagnostics(log, testChunks())))
}
