package api

import (
	"errors"
	"net/http"
	"strconv"

	"docutext/pdf-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Covers both a nonexistent ID and a document owned by someone else. The two
// cases must stay indistinguishable
const documentNotFound = "Document not found"

// docIDParam parses the id path parameter. A non-numeric id can't match any
// document, so callers treat a parse failure like a miss instead of handing
// the raw string to the database, which Postgres would reject as a type error
func docIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}

func (a *API) DocFetch(c *gin.Context) {
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

	c.JSON(http.StatusOK, doc)
}
