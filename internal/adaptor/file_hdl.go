package adaptor

import (
	"net/http"
	"os"
	"path/filepath"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type FileHandler struct {
	config utils.FilesConfig
	log    *zap.Logger
}

func NewFileHandler(config utils.FilesConfig, log *zap.Logger) *FileHandler {
	return &FileHandler{
		config: config,
		log:    log.With(zap.String("handler", "file")),
	}
}

// GetFile handles GET /api/get_file: serves the sample download.
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.config.Dir, h.config.SampleName)

	if _, err := os.Stat(path); err != nil {
		h.log.Warn("Sample file missing", zap.String("path", path), zap.Error(err))
		utils.ResponseNotFound(w, "File not found")
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+h.config.SampleName)
	http.ServeFile(w, r, path)
}
