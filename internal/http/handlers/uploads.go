package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads above this size are rejected before hitting the disk.
const maxUploadBytes = 10 << 20

var allowedUploadExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type uploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Upload stores a source product photo and returns the URL the client passes
// back into the generate call.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		a.error(w, http.StatusBadRequest, "validation", "userId is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "validation", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "validation", "could not read upload")
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedUploadExt[contentType]
	if !ok {
		a.error(w, http.StatusBadRequest, "validation", "unsupported image type, use jpeg, png or webp")
		return
	}
	// Keep the original extension when it matches the sniffed family.
	if orig := strings.ToLower(filepath.Ext(header.Filename)); orig == ".jpeg" && ext == ".jpg" {
		ext = ".jpeg"
	}

	key := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), ext)
	if _, err := a.Store.Write(r.Context(), key, data); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to store upload")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store upload")
		return
	}

	a.json(w, http.StatusCreated, uploadResponse{URL: a.Store.URL(key), Key: key})
}
