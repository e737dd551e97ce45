package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/storage"
)

// FileHandler serves stored files: santri photos and archived recap
// PDFs.
type FileHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileStorage storage.FileStorage
}

func NewFileHandler(fileStorage storage.FileStorage) FileHandler {
	return &fileHandlerImpl{fileStorage: fileStorage}
}

func (h *fileHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")

	file, err := h.fileStorage.Download(r.Context(), path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			response.NotFound(w, "File not found")
			return
		}
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentTypeByExt(path))
	if _, err := io.Copy(w, file); err != nil {
		return
	}
}

func contentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
