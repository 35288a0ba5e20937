package api

import (
	"net/http"
	"strconv"
	"time"

	"docutext/pdf-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// listEntry is the trimmed down listing view, the full text stays out of it
type listEntry struct {
	ID        uint      `json:"id"`
	Filename  string    `json:"nome_arquivo"`
	FileSize  int64     `json:"tamanho_arquivo"`
	CreatedAt time.Time `json:"data_criacao"`
}

func (a *API) DocList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(model.User)

	skipStr := c.DefaultQuery("pular", "0")
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "pular must be a non-negative integer",
			"requestID": requestID,
		})
		return
	}

	limitStr := c.DefaultQuery("limite", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "limite must be a positive integer",
			"requestID": requestID,
		})
		return
	}

	var entries []listEntry

	err = a.DB.
		Model(model.Document{}).
		Where("user_id = ?", user.ID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&entries).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list documents", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, entries)
}
