package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/YOKO3227/Webtoon/internal/logger"
)

// FileBucket serves objects from a directory tree. Keys are slash-separated
// paths relative to the root; the root handle prevents escaping it through
// symlinks or "..".
type FileBucket struct {
	root   *os.Root
	logger *logger.Logger
}

// NewFileBucket opens dir as a [Bucket]. The directory must exist.
func NewFileBucket(dir string, log *logger.Logger) (*FileBucket, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		log.Err(err).Str("dir", dir).Msg("error opening file bucket root")
		return nil, fmt.Errorf("error opening file bucket %q: %w", dir, err)
	}

	log.Debug().Str("dir", dir).Msg("file bucket opened")
	return &FileBucket{root: root, logger: log}, nil
}

func (b *FileBucket) Get(ctx context.Context, key string) (Object, error) {
	if !fs.ValidPath(key) || key == "." {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	info, err := b.root.Stat(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error stating file object")
		return nil, fmt.Errorf("error stating %q: %w", key, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	return &object{
		key: key,
		read: func(context.Context) ([]byte, error) {
			data, err := b.root.ReadFile(key)
			if err != nil {
				return nil, fmt.Errorf("error reading %q: %w", key, err)
			}
			return data, nil
		},
	}, nil
}

// Close releases the root directory handle.
func (b *FileBucket) Close() error {
	return b.root.Close()
}
