package api

import (
	"net/http"

	"docutext/pdf-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) DocDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(model.User)

	docID, ok := docIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     documentNotFound,
			"requestID": requestID,
		})
		return
	}

	r := a.DB.
		Where("id = ? AND user_id = ?", docID, user.ID).
		Delete(&model.Document{})
	if r.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete document", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     documentNotFound,
			"requestID": requestID,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
