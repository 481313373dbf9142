package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spritestage/stage"
)

// SliceSheet cuts per-frame images out of a spritesheet laid out
// left-to-right, top-to-bottom. Reading starts at (row, colStart) and
// continues onto subsequent rows if the requested frames exceed the row
// length. `frameCount` <= 0 means every frame from the start position to the
// end of the sheet. Returns nil when the sheet or frame size is unusable.
func SliceSheet(sheet *ebiten.Image, frameW, frameH, row, colStart, frameCount int) []stage.Frame {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return nil
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	if cols <= 0 || rows <= 0 {
		return nil
	}
	if row < 0 {
		row = 0
	}
	if colStart < 0 {
		colStart = 0
	}
	start := row*cols + colStart
	maxFrames := cols*rows - start
	if maxFrames <= 0 {
		return nil
	}
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}

	frames := make([]stage.Frame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		idx := start + i
		col := idx % cols
		r := idx / cols
		sx := bounds.Min.X + col*frameW
		sy := bounds.Min.Y + r*frameH
		sub := sheet.SubImage(image.Rect(sx, sy, sx+frameW, sy+frameH))
		frames = append(frames, NewImageFrame(ebiten.NewImageFromImage(sub)))
	}
	return frames
}
