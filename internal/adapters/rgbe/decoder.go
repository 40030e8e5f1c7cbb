// Package rgbe decodes Radiance HDR (RGBE) images.
package rgbe

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageDecoder = (*Decoder)(nil)

const (
	minRLEWidth = 8
	maxRLEWidth = 0x7fff
)

// Decoder reads .hdr files into linear RGB.
type Decoder struct{}

// New creates a Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode implements ports.ImageDecoder.
func (d *Decoder) Decode(path string) (*domain.ImageRGB32F, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".hdr" {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedImageFormat, "path", path), "format", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	img, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImageDecodeFailed.Error()), "path", path)
	}
	return img, nil
}

// Read decodes an RGBE stream with the standard -Y +X orientation.
func Read(r *bufio.Reader) (*domain.ImageRGB32F, error) {
	width, height, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	img := domain.NewImageRGB32F(width, height)
	scan := make([]byte, width*4)
	for y := range height {
		if err := readScanline(r, scan); err != nil {
			return nil, fmt.Errorf("scanline %d: %w", y, err)
		}
		for x := range width {
			px := scan[x*4 : x*4+4]
			img.Set(x, y, toFloat(px[0], px[3]), toFloat(px[1], px[3]), toFloat(px[2], px[3]))
		}
	}
	return img, nil
}

func readHeader(r *bufio.Reader) (int, int, error) {
	magic, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("reading signature: %w", err)
	}
	if !strings.HasPrefix(magic, "#?") {
		return 0, 0, fmt.Errorf("missing #? signature")
	}

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return 0, 0, fmt.Errorf("reading header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if format, ok := strings.CutPrefix(line, "FORMAT="); ok && format != "32-bit_rle_rgbe" {
			return 0, 0, fmt.Errorf("unsupported pixel format %q", format)
		}
	}

	res, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("reading resolution: %w", err)
	}
	var width, height int
	if _, err := fmt.Sscanf(strings.TrimSpace(res), "-Y %d +X %d", &height, &width); err != nil {
		return 0, 0, fmt.Errorf("unsupported resolution line %q", strings.TrimSpace(res))
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %dx%d", width, height)
	}
	return width, height, nil
}

// readScanline fills scan with width RGBE quadruples, decoding the adaptive
// run-length encoding when the scanline uses it.
func readScanline(r *bufio.Reader, scan []byte) error {
	width := len(scan) / 4
	if width < minRLEWidth || width > maxRLEWidth {
		_, err := io.ReadFull(r, scan)
		return err
	}

	head, err := r.Peek(4)
	if err != nil {
		return err
	}
	if head[0] != 2 || head[1] != 2 || head[2]&0x80 != 0 {
		_, err := io.ReadFull(r, scan)
		return err
	}
	if int(head[2])<<8|int(head[3]) != width {
		return fmt.Errorf("scanline width mismatch")
	}
	if _, err := r.Discard(4); err != nil {
		return err
	}

	channel := make([]byte, width)
	for c := range 4 {
		if err := readRLEChannel(r, channel); err != nil {
			return err
		}
		for x, v := range channel {
			scan[x*4+c] = v
		}
	}
	return nil
}

func readRLEChannel(r *bufio.Reader, out []byte) error {
	for x := 0; x < len(out); {
		count, err := r.ReadByte()
		if err != nil {
			return err
		}
		if count > 128 {
			n := int(count - 128)
			if x+n > len(out) {
				return fmt.Errorf("run overflows scanline")
			}
			v, err := r.ReadByte()
			if err != nil {
				return err
			}
			for i := range n {
				out[x+i] = v
			}
			x += n
			continue
		}
		n := int(count)
		if n == 0 || x+n > len(out) {
			return fmt.Errorf("invalid literal run")
		}
		if _, err := io.ReadFull(r, out[x:x+n]); err != nil {
			return err
		}
		x += n
	}
	return nil
}

func toFloat(mantissa, exp byte) float32 {
	if exp == 0 {
		return 0
	}
	return float32(math.Ldexp(float64(mantissa)+0.5, int(exp)-(128+8)))
}
