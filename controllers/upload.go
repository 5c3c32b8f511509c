package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/NemesisID/PreviewOnly-Dash/services"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// readUpload returns nil when the field is absent or empty.
func readUpload(c *gin.Context, field string) (*services.Upload, error) {
	fh, err := c.FormFile(field)
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fh.Size == 0 {
		return nil, nil
	}
	if fh.Size > maxUploadBytes {
		return nil, fmt.Errorf("%w: %s is larger than 10MB", services.ErrValidation, field)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, err
	}
	return &services.Upload{Filename: fh.Filename, Data: data}, nil
}

// HTML checkboxes post "on"; API clients send true/1.
func checkbox(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
