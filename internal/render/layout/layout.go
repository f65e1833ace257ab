package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by paddingPx on all sides. A padding larger than half
// the rect collapses it to an empty rectangle at its center.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	padX := min(paddingPx, rect.Dx()/2)
	padY := min(paddingPx, rect.Dy()/2)
	return image.Rect(rect.Min.X+padX, rect.Min.Y+padY, rect.Max.X-padX, rect.Max.Y-padY)
}

// SplitBottom cuts a band of bottomHeightPx off the bottom of rect.
// The band height is clamped to [0, rect.Dy()].
func SplitBottom(rect image.Rectangle, bottomHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	h := max(0, min(bottomHeightPx, rect.Dy()))
	cut := rect.Max.Y - h
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, cut)
	bottom = image.Rect(rect.Min.X, cut, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// CenterSquare returns the largest square that fits into rect, centered on both axes.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	side := min(rect.Dx(), rect.Dy())
	x := rect.Min.X + (rect.Dx()-side)/2
	y := rect.Min.Y + (rect.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}
