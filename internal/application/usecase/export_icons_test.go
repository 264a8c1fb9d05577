package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/emicon/internal/application/port/mocks"
	"github.com/bnema/emicon/internal/application/usecase"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/manifest"
)

type exportMocks struct {
	rasterizer *portmocks.MockRasterizer
	encoder    *portmocks.MockIconEncoder
	archiver   *portmocks.MockArchiver
	fs         *portmocks.MockFileSystem
}

func newExportUseCase(t *testing.T) (*usecase.ExportIconsUseCase, exportMocks) {
	t.Helper()
	m := exportMocks{
		rasterizer: portmocks.NewMockRasterizer(t),
		encoder:    portmocks.NewMockIconEncoder(t),
		archiver:   portmocks.NewMockArchiver(t),
		fs:         portmocks.NewMockFileSystem(t),
	}
	uc := usecase.NewExportIconsUseCase(m.rasterizer, m.encoder, m.archiver, m.fs, manifest.DefaultOptions())
	return uc, m
}

func surface() image.Image {
	return image.NewRGBA(image.Rect(0, 0, entity.DrawSize, entity.DrawSize))
}

func expectAllSizes(m exportMocks) {
	m.encoder.EXPECT().
		Encode(mock.Anything, mock.Anything, mock.AnythingOfType("int")).
		RunAndReturn(func(_ context.Context, _ image.Image, size int) ([]byte, error) {
			return []byte(fmt.Sprintf("png-%d", size)), nil
		})
}

func TestExportIconsUseCase_Export_ProducesAllSizesInOrder(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().
		Rasterize(mock.Anything, entity.RenderRequest{Glyph: "🥑", Family: entity.FontFamilyVector}).
		Return(surface(), nil)
	expectAllSizes(m)

	var built []entity.ExportedImage
	m.archiver.EXPECT().
		Build(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, images []entity.ExportedImage) ([]byte, error) {
			built = images
			return []byte("zip"), nil
		})

	var states []entity.ExportState
	uc.OnStateChange(func(s entity.ExportState) { states = append(states, s) })

	archive, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection(), Family: entity.FontFamilyVector})
	require.NoError(t, err)

	sizes := entity.IconSizes()
	require.Len(t, built, len(sizes))
	require.Len(t, archive.Files, 13)
	for i, s := range sizes {
		assert.Equal(t, s, built[i].SizePx)
		assert.Equal(t, fmt.Sprintf("png-%d", s), string(built[i].Data))
		assert.Equal(t, entity.IconFileName(s), archive.Files[i])
	}
	assert.Equal(t, "icon-16x16.png", archive.Files[0])
	assert.Equal(t, "icon-512x512.png", archive.Files[12])

	assert.Equal(t, 12, strings.Count(archive.Fragment, "},"))
	assert.Contains(t, archive.Manifest, `"name": "Emicon"`)
	assert.Contains(t, archive.Manifest, `"sizes": "512x512"`)
	assert.Equal(t, []byte("zip"), archive.Data)

	assert.Equal(t, []entity.ExportState{entity.ExportDrawing, entity.ExportExporting, entity.ExportReady}, states)
	assert.Equal(t, entity.ExportReady, uc.State())

	ready, err := uc.Archive()
	require.NoError(t, err)
	assert.Same(t, archive, ready)
}

func TestExportIconsUseCase_Export_EmptyGlyph(t *testing.T) {
	uc, _ := newExportUseCase(t)

	_, err := uc.Export(testContext(), usecase.ExportInput{})

	assert.ErrorIs(t, err, entity.ErrEmptyGlyph)
	assert.Equal(t, entity.ExportIdle, uc.State())
}

func TestExportIconsUseCase_Export_EncodeFailureAborts(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil)
	m.encoder.EXPECT().
		Encode(mock.Anything, mock.Anything, mock.AnythingOfType("int")).
		RunAndReturn(func(_ context.Context, _ image.Image, size int) ([]byte, error) {
			if size == 144 {
				return nil, errors.New("png: invalid format")
			}
			return []byte("png"), nil
		})

	_, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "144x144")

	assert.Equal(t, entity.ExportIdle, uc.State())
	_, err = uc.Archive()
	assert.ErrorIs(t, err, entity.ErrNotReady)
	m.archiver.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestExportIconsUseCase_Export_FailureKeepsPreviousArchiveOutOfReach(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil).Once()
	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(nil, errors.New("no glyph")).Once()
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("first"), nil).Once()

	first, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.NoError(t, err)

	_, err = uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.Error(t, err)

	_, err = uc.Archive()
	assert.ErrorIs(t, err, entity.ErrNotReady)
	assert.Equal(t, []byte("first"), first.Data)
}

func TestExportIconsUseCase_Export_RejectsWhileBusy(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	release := make(chan struct{})
	started := make(chan struct{})
	m.rasterizer.EXPECT().
		Rasterize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.RenderRequest) (image.Image, error) {
			close(started)
			<-release
			return surface(), nil
		}).Once()
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("zip"), nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
		done <- err
	}()

	<-started
	assert.True(t, uc.State().Busy())
	_, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	assert.ErrorIs(t, err, entity.ErrExportBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, entity.ExportReady, uc.State())
}

func TestExportIconsUseCase_Export_Idempotent(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil)
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("zip"), nil)

	input := usecase.ExportInput{Selection: entity.DefaultSelection(), Family: entity.FontFamilySansSerif}
	first, err := uc.Export(ctx, input)
	require.NoError(t, err)
	second, err := uc.Export(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Fragment, second.Fragment)
	assert.Equal(t, first.Manifest, second.Manifest)
}

func TestExportIconsUseCase_Export_CanceledContext(t *testing.T) {
	uc, m := newExportUseCase(t)

	ctx, cancel := context.WithCancel(testContext())
	m.rasterizer.EXPECT().
		Rasterize(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.RenderRequest) (image.Image, error) {
			cancel()
			return surface(), nil
		})

	_, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, entity.ExportIdle, uc.State())
}

func TestExportIconsUseCase_Download_NotReady(t *testing.T) {
	uc, _ := newExportUseCase(t)

	_, err := uc.Download(testContext(), usecase.DownloadInput{Dir: t.TempDir()})

	assert.ErrorIs(t, err, entity.ErrNotReady)
}

func TestExportIconsUseCase_Download_WritesArchiveAndManifest(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil)
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("zip"), nil)

	archive, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.NoError(t, err)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")
	m.fs.EXPECT().WriteFileAtomic(mock.Anything, filepath.Join(dir, "icons.zip"), []byte("zip")).Return(nil)
	m.fs.EXPECT().WriteFileAtomic(mock.Anything, manifestPath, []byte(archive.Manifest+"\n")).Return(nil)

	out, err := uc.Download(ctx, usecase.DownloadInput{Dir: dir, ManifestPath: manifestPath})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "icons.zip"), out.ArchivePath)
	assert.Equal(t, manifestPath, out.ManifestPath)
}

func TestExportIconsUseCase_Download_WriteError(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil)
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("zip"), nil)
	m.fs.EXPECT().WriteFileAtomic(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	_, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.NoError(t, err)

	_, err = uc.Download(ctx, usecase.DownloadInput{Dir: "/nonexistent"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save archive")
}

func TestExportIconsUseCase_SetManifestOptions(t *testing.T) {
	ctx := testContext()
	uc, m := newExportUseCase(t)

	m.rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything).Return(surface(), nil)
	expectAllSizes(m)
	m.archiver.EXPECT().Build(mock.Anything, mock.Anything).Return([]byte("zip"), nil)

	opts := manifest.DefaultOptions()
	opts.Name = "Pantry"
	uc.SetManifestOptions(opts)

	archive, err := uc.Export(ctx, usecase.ExportInput{Selection: entity.DefaultSelection()})
	require.NoError(t, err)
	assert.Contains(t, archive.Manifest, `"name": "Pantry"`)
}
