package api

import (
	"errors"
	"net/http"
	"strings"

	"docutext/pdf-api/model"
	"docutext/pdf-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) DocUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(model.User)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Expected a multipart form upload",
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("arquivo")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	text, size, err := service.ProcessUpload(fh)
	if err != nil {
		var extractionErr *service.ExtractionError

		switch {
		case errors.Is(err, service.ErrInvalidFormat),
			errors.Is(err, service.ErrNoFile),
			errors.Is(err, service.ErrEmptyResult),
			errors.As(err, &extractionErr):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})

			zap.L().Debug("Rejected upload", zap.Error(err), zap.String("requestID", requestID))
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to process upload", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	doc := model.Document{
		UserID:        user.ID,
		Filename:      fh.Filename,
		ExtractedText: text,
		FileSize:      size,
	}

	if err := a.DB.Create(&doc).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save document to db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, doc)
}
