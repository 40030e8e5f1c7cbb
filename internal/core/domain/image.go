package domain

// ImageRGB32F is a decoded image in linear RGB, three float32 per pixel, row-major.
type ImageRGB32F struct {
	Width  int
	Height int
	Data   []float32
}

// NewImageRGB32F allocates a black image.
func NewImageRGB32F(width, height int) *ImageRGB32F {
	return &ImageRGB32F{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height*3),
	}
}

// At returns the RGB triple at (x, y).
func (img *ImageRGB32F) At(x, y int) (r, g, b float32) {
	i := (y*img.Width + x) * 3
	return img.Data[i], img.Data[i+1], img.Data[i+2]
}

// Set stores the RGB triple at (x, y).
func (img *ImageRGB32F) Set(x, y int, r, g, b float32) {
	i := (y*img.Width + x) * 3
	img.Data[i], img.Data[i+1], img.Data[i+2] = r, g, b
}

// Color is a linear RGBA clear color.
type Color struct {
	R, G, B, A float32
}

var (
	// ColorNoShader is shown while the selected shader has never compiled.
	ColorNoShader = Color{R: 0.5, A: 1}
	// ColorNoTexture is shown when the current image could not be loaded.
	ColorNoTexture = Color{A: 1}
)
