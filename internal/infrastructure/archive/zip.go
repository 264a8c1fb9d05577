// Package archive packs exported icons into a zip container.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/logging"
)

// Builder implements port.Archiver.
type Builder struct {
	now func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the timestamp source for entry headers.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a zip builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build writes one entry per image, named by its FileName and in input order.
// PNG data is already compressed, so entries are stored.
func (b *Builder) Build(ctx context.Context, images []entity.ExportedImage) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	modified := b.now()
	seen := make(map[string]struct{}, len(images))
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			_ = zw.Close()
			return nil, err
		}

		name := img.FileName()
		if _, dup := seen[name]; dup {
			_ = zw.Close()
			return nil, fmt.Errorf("duplicate archive entry %s", name)
		}
		seen[name] = struct{}{}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: modified,
		})
		if err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("create entry %s: %w", name, err)
		}
		if _, err := w.Write(img.Data); err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("write entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("entries", len(images)).Int("bytes", buf.Len()).Msg("zip built")
	return buf.Bytes(), nil
}

// Entries lists the entry names of a zip archive in stored order.
func Entries(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names, nil
}

var _ port.Archiver = (*Builder)(nil)
