package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/studio-ops/internal/domain/inventory"
	"github.com/Spok95/studio-ops/internal/domain/view"
	"github.com/Spok95/studio-ops/internal/infra/export"
)

func (a *API) listInventory(c *gin.Context) {
	items, err := a.inventory.List(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) createItem(c *gin.Context) {
	var in inventory.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := a.inventory.Create(c.Request.Context(), in)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (a *API) updateItem(c *gin.Context) {
	var p inventory.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := a.inventory.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (a *API) deleteItem(c *gin.Context) {
	if err := a.inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// buildView собирает свежее представление: движок чистый, поэтому после
// каждой мутации клиент просто запрашивает его заново.
func (a *API) buildView(c *gin.Context) (view.View, bool) {
	params := view.Params{
		SearchTerm:     c.Query("search"),
		CategoryFilter: c.DefaultQuery("category", view.FilterAll),
		SortKey:        view.SortKey(c.DefaultQuery("sort", string(view.SortName))),
	}
	if !params.SortKey.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown sort key %q", params.SortKey)})
		return view.View{}, false
	}
	cats, err := a.categories.List(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return view.View{}, false
	}
	items, err := a.inventory.List(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return view.View{}, false
	}
	return view.Build(cats, items, params), true
}

func (a *API) inventoryView(c *gin.Context) {
	v, ok := a.buildView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v)
}

func (a *API) exportInventory(c *gin.Context) {
	v, ok := a.buildView(c)
	if !ok {
		return
	}
	f, err := export.InventoryWorkbook(v)
	if err != nil {
		a.fail(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	name := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		a.log.Error("export write failed", "err", err)
	}
}
