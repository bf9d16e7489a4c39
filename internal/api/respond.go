package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/studio-ops/internal/domain/errs"
)

// fail переводит доменную ошибку в HTTP-статус. Текст доменных ошибок отдаём
// как есть — вызывающий показывает его дословно. Остальное наружу не течёт.
func (a *API) fail(c *gin.Context, err error) {
	var (
		validation  *errs.ValidationError
		notFound    *errs.NotFoundError
		conflict    *errs.ConflictError
		referential *errs.ReferentialConflictError
		duplicate   *errs.DuplicateAssignmentError
		unavailable *errs.NotAvailableError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflict), errors.As(err, &duplicate), errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &referential):
		c.JSON(http.StatusConflict, gin.H{
			"error":          err.Error(),
			"category":       referential.Category,
			"blocking_items": referential.ItemNames,
			"blocking_total": referential.Total,
		})
	default:
		a.log.Error("internal error", "err", err, "route", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
