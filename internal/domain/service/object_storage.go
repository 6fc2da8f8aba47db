package service

import (
	"context"
	"io"
)

// UploadObject is a binary payload destined for object storage.
type UploadObject struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Folder      string
	FileName    string
}

// ObjectStorage stores binaries and returns a publicly resolvable URL.
type ObjectStorage interface {
	Upload(ctx context.Context, object *UploadObject) (string, error)
}
