package services

import (
	"context"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/pkg/storage"
)

// Upload is an image received from a multipart form, already read into memory.
type Upload struct {
	Filename string
	Data     []byte
}

// Present reports whether a file was actually chosen; browsers send an empty part otherwise.
func (u *Upload) Present() bool {
	return u != nil && len(u.Data) > 0
}

func saveUpload(ctx context.Context, store storage.Store, u *Upload, folder string) (string, error) {
	name := strings.TrimSpace(u.Filename)
	if name == "" {
		name = "image"
	}
	return store.Save(ctx, u.Data, name, folder)
}
