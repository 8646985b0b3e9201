package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/utils"
)

// DefaultPath is where the manifest is written when no path is configured
const DefaultPath = "content/index.json"

// CompressedExt is appended to the manifest path for the zstd sidecar
const CompressedExt = ".zst"

// Writer handles writing manifests to the filesystem
type Writer struct {
	path     string
	compress bool
	dryRun   bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path string
	// Compress also writes a zstd-compressed copy next to the manifest
	Compress bool
	DryRun   bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}

	return &Writer{
		path:     opts.Path,
		compress: opts.Compress,
		dryRun:   opts.DryRun,
	}
}

// Path returns the manifest output path
func (w *Writer) Path() string {
	return w.path
}

// CompressedPath returns the path of the zstd sidecar
func (w *Writer) CompressedPath() string {
	return w.path + CompressedExt
}

// Write serializes m and replaces the manifest file. The file is written
// to a temporary sibling first, so readers never observe a partial manifest.
func (w *Writer) Write(ctx context.Context, m *domain.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Marshal(m)
	if err != nil {
		return domain.NewWriteError(w.path, err)
	}

	// Dry run - just return
	if w.dryRun {
		return nil
	}

	if err := writeFileAtomic(w.path, data); err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if w.compress {
		if err := w.writeCompressed(data); err != nil {
			return domain.NewWriteError(w.CompressedPath(), err)
		}
	}

	return nil
}

func (w *Writer) writeCompressed(data []byte) error {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	defer enc.Close()

	return writeFileAtomic(w.CompressedPath(), enc.EncodeAll(data, nil))
}

// Exists checks if a manifest already exists at the output path
func (w *Writer) Exists() bool {
	_, err := os.Stat(w.path)
	return err == nil
}

// Marshal renders m as two-space indented JSON with no trailing newline.
// HTML characters are kept literal.
func Marshal(m *domain.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Read loads a manifest previously written to path. Plain JSON and the
// zstd sidecar are both accepted.
func Read(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if filepath.Ext(path) == CompressedExt {
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
		}
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}
	return &m, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}

func writeFileAtomic(path string, data []byte) error {
	if err := utils.EnsureDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
