package naga

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceMap_Locate(t *testing.T) {
	sm, src := newSourceMap([]string{"", "a\nb\n", "c", "d\ne\nf\n"})
	assert.Equal(t, "a\nb\nc\nd\ne\nf\n", src)

	tests := []struct {
		global    int
		wantIndex int
		wantLine  int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 1},
		{4, 3, 1},
		{6, 3, 3},
	}
	for _, tt := range tests {
		idx, line, ok := sm.locate(tt.global)
		assert.True(t, ok)
		assert.Equal(t, tt.wantIndex, idx, "global line %d", tt.global)
		assert.Equal(t, tt.wantLine, line, "global line %d", tt.global)
	}

	_, _, ok := sm.locate(0)
	assert.False(t, ok)
}

func TestSourceMap_InfoLog(t *testing.T) {
	sm, _ := newSourceMap([]string{"// preamble\n", "fn a() {}\n", "fn b() {\n  oops\n}\n"})

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "parser position",
			err:  errors.New("parse error: line 4, column 3: unexpected identifier"),
			want: "ERROR: 2:2: parse error: unexpected identifier\n",
		},
		{
			name: "lowering position",
			err:  errors.New("2:4: unknown function"),
			want: "ERROR: 1:1: unknown function\n",
		},
		{
			name: "preamble",
			err:  errors.New("line 1, column 1: bad"),
			want: "ERROR: 0:1: bad\n",
		},
		{
			name: "no position",
			err:  errors.New("validation failed: type mismatch"),
			want: "ERROR: validation failed: type mismatch\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sm.infoLog(tt.err))
		})
	}
}
