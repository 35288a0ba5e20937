package api

import (
	"errors"
	"net/http"

	"docutext/pdf-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pointers so an absent field can be told apart from an empty one. Only the
// fields the caller actually sent get written
type docEditBody struct {
	Filename      *string `json:"nome_arquivo"`
	ExtractedText *string `json:"texto_extraido"`
}

func (a *API) DocEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(model.User)

	docID, ok := docIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     documentNotFound,
			"requestID": requestID,
		})
		return
	}

	var data docEditBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var doc model.Document

	err := a.DB.
		Where("id = ? AND user_id = ?", docID, user.ID).
		First(&doc).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     documentNotFound,
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch document from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}
	if data.Filename != nil {
		updates["filename"] = *data.Filename
		doc.Filename = *data.Filename
	}
	if data.ExtractedText != nil {
		updates["extracted_text"] = *data.ExtractedText
		doc.ExtractedText = *data.ExtractedText
	}

	if len(updates) > 0 {
		err = a.DB.
			Model(&doc).
			Updates(updates).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update document", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, doc)
}
