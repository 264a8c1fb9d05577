package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/manifest"
	"github.com/bnema/emicon/internal/logging"
)

// ExportStateListener is called on every export state transition.
type ExportStateListener func(entity.ExportState)

// ExportIconsUseCase runs the draw, rescale and archive pipeline and owns
// the archive offered for download.
//
// Only one run may be in flight: a trigger while Drawing or Exporting fails
// with entity.ErrExportBusy. A failed run returns to Idle and keeps the last
// completed archive out of reach until the next successful run.
type ExportIconsUseCase struct {
	rasterizer port.Rasterizer
	encoder    port.IconEncoder
	archiver   port.Archiver
	fs         port.FileSystem
	opts       manifest.Options

	mu        sync.Mutex
	state     entity.ExportState
	archive   *entity.Archive
	listeners []ExportStateListener
}

// NewExportIconsUseCase creates a new export use case.
func NewExportIconsUseCase(
	rasterizer port.Rasterizer,
	encoder port.IconEncoder,
	archiver port.Archiver,
	fs port.FileSystem,
	opts manifest.Options,
) *ExportIconsUseCase {
	return &ExportIconsUseCase{
		rasterizer: rasterizer,
		encoder:    encoder,
		archiver:   archiver,
		fs:         fs,
		opts:       opts,
		state:      entity.ExportIdle,
	}
}

// ExportInput contains export parameters.
type ExportInput struct {
	Selection entity.Selection
	Family    entity.FontFamily
}

// OnStateChange registers a listener for state transitions.
func (uc *ExportIconsUseCase) OnStateChange(fn ExportStateListener) {
	uc.mu.Lock()
	uc.listeners = append(uc.listeners, fn)
	uc.mu.Unlock()
}

// State returns the current pipeline state.
func (uc *ExportIconsUseCase) State() entity.ExportState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// SetManifestOptions replaces the manifest fields used by the next run.
func (uc *ExportIconsUseCase) SetManifestOptions(opts manifest.Options) {
	uc.mu.Lock()
	uc.opts = opts
	uc.mu.Unlock()
}

// Archive returns the downloadable archive, or entity.ErrNotReady when the
// pipeline is not Ready.
func (uc *ExportIconsUseCase) Archive() (*entity.Archive, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.state.DownloadEnabled() || uc.archive == nil {
		return nil, entity.ErrNotReady
	}
	return uc.archive, nil
}

// Export draws the selection, encodes every icon size in order and builds
// the archive. Any failure aborts the run without replacing the previous
// archive.
func (uc *ExportIconsUseCase) Export(ctx context.Context, input ExportInput) (*entity.Archive, error) {
	if input.Selection.Glyph == "" {
		return nil, entity.ErrEmptyGlyph
	}

	if err := uc.begin(); err != nil {
		return nil, err
	}

	ctx = logging.WithGlyph(logging.WithComponent(ctx, "export"), input.Selection.Glyph)
	log := logging.FromContext(ctx)
	log.Info().Str("label", input.Selection.Label).Str("family", input.Family.String()).Msg("export started")

	archive, err := uc.run(ctx, input)
	if err != nil {
		uc.transition(entity.ExportIdle, nil)
		log.Error().Err(err).Msg("export failed")
		return nil, err
	}

	uc.transition(entity.ExportReady, archive)
	log.Info().Int("files", len(archive.Files)).Int("bytes", len(archive.Data)).Msg("export ready")
	return archive, nil
}

func (uc *ExportIconsUseCase) run(ctx context.Context, input ExportInput) (*entity.Archive, error) {
	log := logging.FromContext(ctx)

	src, err := uc.rasterizer.Rasterize(ctx, entity.RenderRequest{
		Glyph:  input.Selection.Glyph,
		Family: input.Family,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to draw glyph: %w", err)
	}

	uc.transition(entity.ExportExporting, nil)

	sizes := entity.IconSizes()
	images := make([]entity.ExportedImage, 0, len(sizes))
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := uc.encoder.Encode(ctx, src, size)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %dx%d: %w", size, size, err)
		}
		log.Debug().Int("size", size).Int("bytes", len(data)).Msg("icon encoded")
		images = append(images, entity.ExportedImage{SizePx: size, Data: data})
	}

	data, err := uc.archiver.Build(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}

	fragment, err := manifest.Fragment(sizes)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	opts := uc.opts
	uc.mu.Unlock()
	doc, err := manifest.Document(fragment, opts)
	if err != nil {
		return nil, err
	}

	files := make([]string, len(images))
	for i, img := range images {
		files[i] = img.FileName()
	}

	return &entity.Archive{
		Data:      data,
		Files:     files,
		Fragment:  fragment,
		Manifest:  doc,
		Selection: input.Selection,
		Family:    input.Family,
	}, nil
}

// DownloadInput contains download parameters.
type DownloadInput struct {
	// Dir receives icons.zip.
	Dir string
	// ManifestPath, when set, receives the manifest document.
	ManifestPath string
}

// DownloadOutput reports the written files.
type DownloadOutput struct {
	ArchivePath  string
	ManifestPath string
}

// Download writes the ready archive to disk.
func (uc *ExportIconsUseCase) Download(ctx context.Context, input DownloadInput) (*DownloadOutput, error) {
	archive, err := uc.Archive()
	if err != nil {
		return nil, err
	}

	out := &DownloadOutput{ArchivePath: filepath.Join(input.Dir, entity.ArchiveFileName)}
	if err := uc.fs.WriteFileAtomic(ctx, out.ArchivePath, archive.Data); err != nil {
		return nil, fmt.Errorf("failed to save archive: %w", err)
	}

	if input.ManifestPath != "" {
		if err := uc.fs.WriteFileAtomic(ctx, input.ManifestPath, []byte(archive.Manifest+"\n")); err != nil {
			return nil, fmt.Errorf("failed to save manifest: %w", err)
		}
		out.ManifestPath = input.ManifestPath
	}

	logging.FromContext(ctx).Info().
		Str("archive", out.ArchivePath).
		Str("manifest", out.ManifestPath).
		Msg("export downloaded")
	return out, nil
}

// begin moves the pipeline to Drawing unless a run is already in flight.
func (uc *ExportIconsUseCase) begin() error {
	uc.mu.Lock()
	if uc.state.Busy() {
		uc.mu.Unlock()
		return entity.ErrExportBusy
	}
	uc.state = entity.ExportDrawing
	listeners := uc.listenersLocked()
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(entity.ExportDrawing)
	}
	return nil
}

// transition sets the state and, for Ready, publishes archive.
func (uc *ExportIconsUseCase) transition(state entity.ExportState, archive *entity.Archive) {
	uc.mu.Lock()
	uc.state = state
	if archive != nil {
		uc.archive = archive
	}
	listeners := uc.listenersLocked()
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (uc *ExportIconsUseCase) listenersLocked() []ExportStateListener {
	listeners := make([]ExportStateListener, len(uc.listeners))
	copy(listeners, uc.listeners)
	return listeners
}
