package lut_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports/mocks"
	"go.trai.ch/hdrview/internal/engine/artifact"
	"go.trai.ch/hdrview/internal/engine/lut"
	"go.trai.ch/hdrview/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	driver  *mocks.MockShaderDriver
	device  *mocks.MockRenderDevice
	logger  *mocks.MockLogger
	reg     *registry.Registry
	library *lut.Library
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tonemap.wgsl"), []byte("fn cs() {}\n"), 0o600))

	ctrl := gomock.NewController(t)
	f := &fixture{
		driver: mocks.NewMockShaderDriver(ctrl),
		device: mocks.NewMockRenderDevice(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.driver.EXPECT().Dialect().Return(domain.Dialect{Name: "test"}).AnyTimes()
	f.driver.EXPECT().CreateShader(domain.StageCompute).Return(domain.ShaderHandle(1), nil)
	f.driver.EXPECT().ShaderSource(domain.ShaderHandle(1), gomock.Any())
	f.driver.EXPECT().CompileShader(domain.ShaderHandle(1)).Return(true)
	f.driver.EXPECT().CreateProgram().Return(domain.ProgramHandle(2), nil)
	f.driver.EXPECT().AttachShader(domain.ProgramHandle(2), domain.ShaderHandle(1))
	f.driver.EXPECT().LinkProgram(domain.ProgramHandle(2)).Return(true)
	f.driver.EXPECT().DeleteShader(domain.ShaderHandle(1))

	f.reg = registry.New(artifact.New(), root, f.driver, f.logger)
	f.library = lut.New(f.reg, f.driver, f.device, f.logger)
	return f
}

func TestLibrary_ComputesAfterCompile(t *testing.T) {
	f := newFixture(t)
	f.device.EXPECT().CreateTexture1D(uint32(100)).Return(domain.TextureHandle(9), nil)
	f.driver.EXPECT().UniformLocation(domain.ProgramHandle(2), lut.OutputUniform).Return(int32(0))
	f.driver.EXPECT().WorkGroupSize(domain.ProgramHandle(2)).Return([3]uint32{64, 1, 1})
	f.device.EXPECT().Dispatch(domain.ProgramHandle(2), domain.TextureHandle(9), [3]uint32{2, 1, 1}).Return(nil)

	require.NoError(t, f.library.Add(domain.LutDesc{Name: "tonemap", Width: 100, ShaderPath: "tonemap.wgsl"}))
	require.True(t, f.reg.CompileAll(context.Background()))

	tex, ok := f.library.Texture("tonemap")
	require.True(t, ok)
	assert.Equal(t, domain.TextureHandle(9), tex)
	assert.Equal(t, []string{"tonemap"}, f.library.Names())

	_, ok = f.library.Texture("other")
	assert.False(t, ok)

	f.driver.EXPECT().DeleteProgram(domain.ProgramHandle(2))
	f.device.EXPECT().DeleteTexture(domain.TextureHandle(9))
	f.reg.Close()
	f.library.Close()
}

func TestLibrary_MissingOutputImage(t *testing.T) {
	f := newFixture(t)
	f.device.EXPECT().CreateTexture1D(uint32(16)).Return(domain.TextureHandle(9), nil)
	f.driver.EXPECT().UniformLocation(domain.ProgramHandle(2), lut.OutputUniform).Return(int32(-1))
	f.logger.EXPECT().Warn(gomock.Any())

	require.NoError(t, f.library.Add(domain.LutDesc{Name: "tonemap", Width: 16, ShaderPath: "tonemap.wgsl"}))
	require.True(t, f.reg.CompileAll(context.Background()))

	f.driver.EXPECT().DeleteProgram(domain.ProgramHandle(2))
	f.reg.Close()
}
