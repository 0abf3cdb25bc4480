package handler

import (
	"errors"
	"net/http"

	"github.com/EvaneiWFreitas/sisManutencao/internal/service"
	"github.com/gin-gonic/gin"
)

// The API speaks the envelope the site's pages already consume:
// {success, message, data} on success, {error} with a non-2xx status on failure.

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		respondError(c, http.StatusBadRequest, validation.Message)
		return
	}
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, "Protocolo não encontrado")
		return
	}
	respondError(c, http.StatusInternalServerError, err.Error())
}
