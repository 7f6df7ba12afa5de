package backend

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// ErrNoOutput is returned by Save for backends that can neither write to an
// io.Writer nor save to a file.
var ErrNoOutput = errors.New("backend: backend has no output")

// Export runs one session on b: Begin with the canvas size, Render of
// content through tr, then End.
func Export(b Backend, width, height int, tr transform.Transformer, content sketch.Shape, opts ...sketch.Option) error {
	if err := b.Begin(width, height); err != nil {
		return fmt.Errorf("backend: begin: %w", err)
	}
	sketch.Logger().Debug("backend: export", "width", width, "height", height)
	sketch.Render(b, tr, geom.V2(float64(width), float64(height)), content, opts...)
	if err := b.End(); err != nil {
		return fmt.Errorf("backend: end: %w", err)
	}
	return nil
}

// Save stores the output of a finished session at path, preferring
// SaveToFile over WriteTo.
func Save(b Backend, path string) error {
	switch out := b.(type) {
	case FileBackend:
		return out.SaveToFile(path)
	case WriterBackend:
		return writeFile(out, path)
	default:
		return ErrNoOutput
	}
}

func writeFile(out WriterBackend, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("backend: %w", cerr)
		}
	}()
	if _, err = out.WriteTo(f); err != nil {
		return fmt.Errorf("backend: write %s: %w", path, err)
	}
	return nil
}
