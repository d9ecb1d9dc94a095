package geometry

import (
	"github.com/ghetzel/go-stockutil/mathutil"
)

// A Region is anything whose document-relative rectangle can be measured.
// Measurements are taken live on every call; callers must not cache them
// across scroll gestures.
type Region interface {
	Rect() Dimensions
	BorderOffset() Point
}

// A Surface is a scrollable Region. The same operations work whether the
// scrolling area is an ordinary element or the document itself; the engine
// never branches on which one it is talking to.
type Surface interface {
	Region

	// Current scroll offsets.
	Offset() Point

	// Write the scroll offset on a single axis. Values are clamped to the
	// scrollable range.
	SetOffset(axis Axis, value float64)

	// Total scrollable width and height of the content.
	ScrollSize() Point

	// Width and height of the visible area.
	Viewport() Point
}

// Return the maximum scroll offset of a surface along the given axis.
func MaxOffset(surface Surface, axis Axis) float64 {
	max := surface.ScrollSize().Get(axis) - surface.Viewport().Get(axis)

	if max < 0 {
		return 0
	}

	return max
}

// Box is an in-memory Region with a mutable rectangle.
type Box struct {
	rect   Dimensions
	border Point
}

func NewBox(left float64, top float64, width float64, height float64) *Box {
	return &Box{
		rect: MakeDimensions(left, top, width, height),
	}
}

func (self *Box) Rect() Dimensions {
	return self.rect
}

func (self *Box) BorderOffset() Point {
	return self.border
}

func (self *Box) MoveTo(left float64, top float64) {
	self.rect = MakeDimensions(left, top, self.rect.Width, self.rect.Height)
}

func (self *Box) SetBorderOffset(x float64, y float64) {
	self.border = Point{X: x, Y: y}
}

// ElementSurface scrolls an ordinary element: the viewport is the element's
// own rectangle, and the scrollable size is the extent of its content.
type ElementSurface struct {
	*Box
	content Point
	offset  Point
}

func NewElementSurface(box *Box, contentWidth float64, contentHeight float64) *ElementSurface {
	return &ElementSurface{
		Box: box,
		content: Point{
			X: contentWidth,
			Y: contentHeight,
		},
	}
}

func (self *ElementSurface) Offset() Point {
	return self.offset
}

func (self *ElementSurface) SetOffset(axis Axis, value float64) {
	self.offset.Set(axis, mathutil.Clamp(value, 0, MaxOffset(self, axis)))
}

func (self *ElementSurface) ScrollSize() Point {
	return self.content
}

func (self *ElementSurface) Viewport() Point {
	return Point{
		X: self.rect.Width,
		Y: self.rect.Height,
	}
}

// DocumentSurface scrolls the root document: the viewport is the window, the
// scrollable size is the document body, and the surface's own rectangle is
// the document origin.
type DocumentSurface struct {
	window Point
	body   Point
	offset Point
}

func NewDocumentSurface(windowWidth float64, windowHeight float64, bodyWidth float64, bodyHeight float64) *DocumentSurface {
	return &DocumentSurface{
		window: Point{
			X: windowWidth,
			Y: windowHeight,
		},
		body: Point{
			X: bodyWidth,
			Y: bodyHeight,
		},
	}
}

func (self *DocumentSurface) Rect() Dimensions {
	return MakeDimensions(0, 0, self.window.X, self.window.Y)
}

func (self *DocumentSurface) BorderOffset() Point {
	return Point{}
}

func (self *DocumentSurface) Offset() Point {
	return self.offset
}

func (self *DocumentSurface) SetOffset(axis Axis, value float64) {
	self.offset.Set(axis, mathutil.Clamp(value, 0, MaxOffset(self, axis)))
}

func (self *DocumentSurface) ScrollSize() Point {
	return self.body
}

func (self *DocumentSurface) Viewport() Point {
	return self.window
}
