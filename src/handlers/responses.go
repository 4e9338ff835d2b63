package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

// exposeErrorDetail controls whether 500 responses carry the underlying
// error text. Enabled only outside production.
var exposeErrorDetail bool

// SetErrorDetail toggles error detail in 500 responses.
func SetErrorDetail(enabled bool) {
	exposeErrorDetail = enabled
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Cuerpo de la petición inválido",
	})
}

// respondError maps service errors to the uniform envelope. notFoundMessage
// names the entity for 404 responses.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  vErr.Fields,
		})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": notFoundMessage,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Credenciales inválidas",
		})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Ya existe un usuario administrador",
		})
	default:
		body := gin.H{
			"success": false,
			"message": "Error interno del servidor",
		}
		if exposeErrorDetail {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
