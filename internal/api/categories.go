package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type categoryNameRequest struct {
	Name string `json:"name"`
}

type reorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

func (a *API) listCategories(c *gin.Context) {
	cats, err := a.categories.List(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (a *API) createCategory(c *gin.Context) {
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := a.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (a *API) renameCategory(c *gin.Context) {
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := a.categories.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (a *API) deleteCategory(c *gin.Context) {
	if err := a.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderCategories возвращает полный перенумерованный список: успех — новое
// состояние, ошибка — причина; клиент сверяет и откатывает свой локальный порядок.
func (a *API) reorderCategories(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cats, err := a.categories.Reorder(c.Request.Context(), req.OrderedIDs)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}
