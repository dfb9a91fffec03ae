package handler

import (
	"errors"
	"net/http"

	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
	"github.com/sparkboard-dev/sparkboard/internal/validation"
)

// UploadMedia accepts one multipart file under the "file" field, validates
// it and stores it, returning the public URL the client embeds in a spark.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	maxSize := h.cfg.Public.MaxUploadSizeBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20) // payload plus form overhead

	if err := r.ParseMultipartForm(maxSize); err != nil {
		http.Error(w, "File too large or malformed form", http.StatusRequestEntityTooLarge)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	file.Close() // ValidateUpload reopens from the header

	pending, err := validation.ValidateUpload(fileHeader, maxSize, h.cfg.Public.AllowedImageMimes, h.cfg.Public.AllowedAudioMimes)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrPayloadTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, validation.ErrInvalidMimeType):
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}
	defer pending.Data.Close()

	url, err := h.media.Upload(mw.GetUserFromContext(r), pending.Data, pending.Filename)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := map[string]interface{}{"url": url, "mimeType": pending.MimeType}
	if pending.ImageWidth != nil && pending.ImageHeight != nil {
		response["width"] = *pending.ImageWidth
		response["height"] = *pending.ImageHeight
	}
	writeJSONStatus(w, http.StatusCreated, response)
}
