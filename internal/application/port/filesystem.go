package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// WriteFileAtomic replaces path with data so readers never observe a
	// partially written file.
	WriteFileAtomic(ctx context.Context, path string, data []byte) error
}
