package backend

import (
	"io"

	"github.com/gogpu/sketch"
)

// Backend is the interface that all export backends implement. It receives
// drawing commands through the embedded RenderTarget and translates them to
// its output format (pixels, SVG elements, CAD entities).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using backend.Register()
//  2. Accept Begin before any drawing command
//  3. Finish its output in End, after which WriteTo or SaveToFile may be called
type Backend interface {
	sketch.RenderTarget

	// Begin starts a session for a canvas of the given size in drawing units.
	Begin(width, height int) error

	// End finalizes the output.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer. WriteTo should only be called after End.
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a
// file. SaveToFile should only be called after End.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}
