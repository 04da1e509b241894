package filestore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores uploaded blobs under BaseDir and hands back the relative
// path served under /media. Stored names get a UUID prefix so two uploads
// with the same client filename never collide.
type Local struct {
	BaseDir string
}

func (l Local) Save(_ context.Context, dir string, filename string, data []byte) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	target := filepath.Join(l.BaseDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return path.Join("/media", dir, name), nil
}
