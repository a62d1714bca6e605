package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the game loop cleanly.
var ErrTerminate = errors.New("render: terminate")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)

	// Text operations. (x, y) is the top-left of the text box and size is
	// the font size in pixels.
	DrawText(dst Image, text string, x, y float64, clr color.Color, size float64)
	MeasureText(text string, size float64) (width, height float64)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Alpha scales the source alpha. Zero means fully opaque so the zero
	// value draws normally.
	Alpha float32
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Pointer is the merged state of the primary mouse button and the first
// active touch, in screen coordinates.
type Pointer struct {
	X, Y         int
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// InputManager handles input from the user (keyboard, mouse, touch).
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// Pointer returns this tick's pointer state. Backends may track touch
	// ids between calls, so call it once per tick.
	Pointer() Pointer
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game listens to
const (
	KeyEscape Key = iota
	KeySpace
	KeyEnter
	KeyM // Menu toggle
	KeyJ // Journal tab
	KeyC // Collection tab
)

// AllKeys lists every key a backend must map.
var AllKeys = []Key{KeyEscape, KeySpace, KeyEnter, KeyM, KeyJ, KeyC}

// ResourceLoader handles loading resources like images from disk.
// Implementations must be safe for concurrent use.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminate ends the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetWindowClosingHandled makes closing the window a request the game
	// sees through IsWindowBeingClosed instead of an immediate exit.
	SetWindowClosingHandled(handled bool)

	// IsWindowBeingClosed reports whether the user asked to close the window.
	IsWindowBeingClosed() bool

	// TPS returns the number of updates per second.
	TPS() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
