package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	logFileName = "emicon.log"
	logFilePerm = 0o600
	bytesPerMB  = 1024 * 1024
)

// RotatorOptions configures a LogRotator.
type RotatorOptions struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.WriteCloser that rotates emicon.log once it grows past
// MaxSizeMB. Rotated files are timestamped and optionally gzipped.
type LogRotator struct {
	mu          sync.Mutex
	opts        RotatorOptions
	maxSize     int64
	maxAge      time.Duration
	currentFile *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) the current log file in opts.Dir.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	r := &LogRotator{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * bytesPerMB,
		maxAge:  time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.opts.Dir, logFileName)
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.path()); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

// Write implements io.Writer.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		_ = r.currentFile.Close()
		r.currentFile = nil
	}

	backupPath := fmt.Sprintf("%s.%s", r.path(), time.Now().Format("2006-01-02-15-04-05"))
	if err := os.Rename(r.path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.prune()

	r.currentSize = 0
	return r.open()
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// prune removes backups older than MaxAgeDays and keeps at most MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return
	}

	var backups []os.FileInfo
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logFileName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.opts.Dir, entry.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}

	slices.SortFunc(backups, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(filepath.Join(r.opts.Dir, info.Name()))
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
