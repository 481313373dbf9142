package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageFrame adapts an *ebiten.Image to the stage.Frame interface.
type ImageFrame struct {
	img *ebiten.Image
}

// NewImageFrame wraps `img` as a drawable frame. Returns nil for a nil image.
func NewImageFrame(img *ebiten.Image) *ImageFrame {
	if img == nil {
		return nil
	}
	return &ImageFrame{img: img}
}

// Size returns the native pixel size of the frame.
func (f *ImageFrame) Size() (int, int) {
	if f == nil || f.img == nil {
		return 0, 0
	}
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten image.
func (f *ImageFrame) Image() *ebiten.Image {
	if f == nil {
		return nil
	}
	return f.img
}
