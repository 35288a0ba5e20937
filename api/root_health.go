package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mensagem": "API de Extração de Texto de PDF",
		"versao":   "1.0.0",
	})
}
