package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/service"
)

// UploadLogo receives a multipart "logo" file and returns the stored object's
// public URL, to be used as the logo of an image-typed brand.
func (h HandlerSet) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "logo file required")
		return
	}
	defer file.Close()

	url, err := h.logos.Upload(c.Request.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLogoTooLarge):
			respondError(c, http.StatusBadRequest, "logo file too large")
		case errors.Is(err, service.ErrUnsupportedLogo):
			respondError(c, http.StatusBadRequest, "unsupported logo format")
		default:
			h.serviceError(c, err)
		}
		return
	}

	respondMessage(c, http.StatusCreated, "logo uploaded", gin.H{
		"url":      url,
		"logoType": "image",
	})
}
