package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrview/internal/adapters/config"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DefaultConfigFile), []byte(content), 0o600))
	return dir
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
asset_root: assets
images: photos/sunset.hdr
shaders:
  - shaders/linear.wgsl
  - shaders/filmic.wgsl
luts:
  - name: tony
    width: 256
    shader: shaders/lut/tony.wgsl
postamble: |
  @fragment fn fs_main() {}
watch:
  debounce: 250ms
frame_interval: 33ms
cache:
  eviction: refcount
log:
  format: json
ev: -1.5
`)

	s, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)

	root, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, &domain.Settings{
		AssetRoot:     filepath.Join(root, "assets"),
		Images:        filepath.Join(root, "photos", "sunset.hdr"),
		Shaders:       []string{"shaders/linear.wgsl", "shaders/filmic.wgsl"},
		LUTs:          []domain.LutDesc{{Name: "tony", Width: 256, ShaderPath: "shaders/lut/tony.wgsl"}},
		Postamble:     "@fragment fn fs_main() {}\n",
		Debounce:      250 * time.Millisecond,
		FrameInterval: 33 * time.Millisecond,
		Eviction:      "refcount",
		JSONLogs:      true,
		EV:            -1.5,
	}, s)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	dir := t.TempDir()
	s, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)

	root, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, root, s.AssetRoot)
	assert.Equal(t, filepath.Join(root, domain.DefaultImageInput), s.Images)
	assert.Equal(t, []string{domain.DefaultShader}, s.Shaders)
	assert.Equal(t, domain.DefaultDebounce, s.Debounce)
	assert.Equal(t, domain.DefaultFrameInterval, s.FrameInterval)
	assert.Equal(t, "retain", s.Eviction)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "ev: 2\n")

	s, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.EV, 1e-6)
	assert.Equal(t, []string{domain.DefaultShader}, s.Shaders)
	assert.Equal(t, domain.DefaultDebounce, s.Debounce)
	assert.False(t, s.JSONLogs)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed yaml", "shaders: [unterminated\n", domain.ErrConfigParseFailed},
		{"bad duration", "watch:\n  debounce: soon\n", domain.ErrConfigParseFailed},
		{"unknown eviction", "cache:\n  eviction: lru\n", domain.ErrConfigParseFailed},
		{"unknown log format", "log:\n  format: xml\n", domain.ErrConfigParseFailed},
		{"lut without width", "luts:\n  - name: a\n    shader: a.wgsl\n", domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)
			_, err := config.NewLoader(nil).Load(dir)
			require.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.NewLoader(nil).LoadFile(filepath.Join(t.TempDir(), "custom.yaml"))
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
