package backend

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/transform"
)

// mockBackend is a minimal backend implementation for testing.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	lines      int
	endErr     error
	log        []string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	b.log = append(b.log, "Begin")
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	b.log = append(b.log, "End")
	return b.endErr
}

func (b *mockBackend) BeginPath()                                        {}
func (b *mockBackend) MoveTo(_ geom.Vector2)                             {}
func (b *mockBackend) LineTo(_ geom.Vector2)                             { b.lines++ }
func (b *mockBackend) Arc(_ geom.Vector2, _, _, _ float64, _ bool)       {}
func (b *mockBackend) Circle(_ geom.Vector2, _ float64)                  {}
func (b *mockBackend) ClosePath()                                        {}
func (b *mockBackend) StrokePath()                                       { b.log = append(b.log, "StrokePath") }
func (b *mockBackend) FillPath()                                         {}
func (b *mockBackend) SetStrokeColor(_ sketch.Color)                     {}
func (b *mockBackend) SetLineWidth(_ float64)                            {}
func (b *mockBackend) SetLineStyle(_ sketch.LineStyle)                   {}
func (b *mockBackend) Text(_ string, _ geom.Vector2, _ float64)          {}
func (b *mockBackend) AddComment(_ string)                               {}

// writerBackend adds WriteTo to the mock.
type writerBackend struct {
	*mockBackend
	data string
}

func (b *writerBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.data)
	return int64(n), err
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]Factory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("unknown")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "forgotten import?") {
		t.Errorf("error %q should hint at a forgotten import", err)
	}
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()

	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	factory := func() Backend { return newMockBackend("dup") }

	Register("dup", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()

	Register("dup", factory)
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", func() Backend {
		return newMockBackend("temp")
	})

	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}

	Unregister("temp")

	if IsRegistered("temp") {
		t.Error("backend should not be registered after Unregister")
	}

	// Unregister non-existent should not panic
	Unregister("nonexistent")
}

func TestBackends(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("svg", func() Backend { return newMockBackend("s") })
	Register("dxf", func() Backend { return newMockBackend("d") })
	Register("raster", func() Backend { return newMockBackend("r") })

	names := Backends()

	expected := []string{"dxf", "raster", "svg"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d backends, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("names[%d] = %q, want %q", i, name, expected[i])
		}
	}
}

func TestCount(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if Count() != 0 {
		t.Errorf("expected count 0, got %d", Count())
	}

	Register("one", func() Backend { return newMockBackend("1") })
	Register("two", func() Backend { return newMockBackend("2") })
	if Count() != 2 {
		t.Errorf("expected count 2, got %d", Count())
	}
}

func TestMustBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("must", func() Backend {
		return newMockBackend("must")
	})

	if MustBackend("must") == nil {
		t.Error("expected non-nil backend")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	_ = MustBackend("unknown")
}

func TestExport(t *testing.T) {
	mock := newMockBackend("export")
	scene := sketch.LineSection{From: geom.V3(0, 0, 0), To: geom.V3(10, 0, 0)}

	if err := Export(mock, 800, 600, transform.NewAxisAligned(geom.PlaneXY), scene); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if mock.width != 800 || mock.height != 600 {
		t.Errorf("got dimensions %dx%d, want 800x600", mock.width, mock.height)
	}
	want := []string{"Begin", "StrokePath", "End"}
	if strings.Join(mock.log, ",") != strings.Join(want, ",") {
		t.Errorf("got calls %v, want %v", mock.log, want)
	}
	if mock.lines != 1 {
		t.Errorf("got %d LineTo calls, want 1", mock.lines)
	}
}

func TestExportEndError(t *testing.T) {
	sentinel := errors.New("boom")
	mock := newMockBackend("fail")
	mock.endErr = sentinel

	err := Export(mock, 10, 10, transform.NewAxisAligned(geom.PlaneXY), sketch.Nothing{})
	if !errors.Is(err, sentinel) {
		t.Errorf("Export error = %v, want wrapped %v", err, sentinel)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.txt")
	wb := &writerBackend{mockBackend: newMockBackend("w"), data: "hello"}
	if err := Save(wb, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Errorf("file contains %q", got)
	}

	if err := Save(newMockBackend("none"), path); !errors.Is(err, ErrNoOutput) {
		t.Errorf("Save without output = %v, want ErrNoOutput", err)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	done := make(chan bool)

	go func() {
		for i := 0; i < 100; i++ {
			name := "concurrent" + string(rune('A'+i%26)) + string(rune('0'+i/26))
			func() {
				defer func() { _ = recover() }()
				Register(name, func() Backend { return newMockBackend(name) })
			}()
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 100; i++ {
			_ = Backends()
			_ = Count()
			_ = IsRegistered("nonexistent")
		}
		done <- true
	}()

	<-done
	<-done
}
