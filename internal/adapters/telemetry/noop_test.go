package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/adapters/telemetry"
	"go.trai.ch/hdrview/internal/core/ports"
)

func TestNoOp_Record(t *testing.T) {
	var tel ports.Telemetry = telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "compile shaders/a.wgsl")
	require.NotNil(t, v)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, fromCtx)

	n, err := v.Stderr().Write([]byte("ERROR: a.wgsl(3): bad\n"))
	require.NoError(t, err)
	assert.Equal(t, 22, n)

	v.Cached()
	v.Complete(nil)
	require.NoError(t, tel.Close())
}
