package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobguard/internal/extract"
	"jobguard/internal/shared/server/respond"
	"jobguard/internal/shared/util"
)

func (h *Handler) uploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if err := extract.ValidateUpload(fileName, mimeType, fileHeader.Size); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, extract.MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if int64(len(data)) > extract.MaxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 5 MB limit", nil)
		return
	}

	text, err := extract.ExtractTextFromFile(fileName, mimeType, data)
	if err != nil {
		var extractionErr *extract.ExtractionError
		if errors.As(err, &extractionErr) {
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", extractionErr.Reason, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to extract text", nil)
		return
	}

	sess := sessionFromContext(c)
	h.Records.SaveActiveResume(sess.User.Email, text, fileName)
	respond.OK(c, gin.H{
		"fileName":   fileName,
		"characters": len(text),
	})
}

func (h *Handler) getResume(c *gin.Context) {
	sess := sessionFromContext(c)
	resume := h.Records.GetActiveResume(sess.User.Email)
	if resume == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no resume uploaded", nil)
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) removeResume(c *gin.Context) {
	sess := sessionFromContext(c)
	h.Records.ClearActiveResume(sess.User.Email)
	respond.OK(c, gin.H{"removed": true})
}
