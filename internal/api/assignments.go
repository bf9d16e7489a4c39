package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type assignRequest struct {
	InventoryItemID string `json:"inventory_item_id"`
	Notes           string `json:"notes"`
}

func (a *API) listProjectInventory(c *gin.Context) {
	items, err := a.assignments.ListForProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) listCandidates(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}
	items, err := a.assignments.AvailableCandidates(c.Request.Context(), category, c.Param("id"))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) assignItem(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.InventoryItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory_item_id is required"})
		return
	}
	asg, err := a.assignments.Assign(c.Request.Context(), c.Param("id"), req.InventoryItemID, req.Notes)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, asg)
}

func (a *API) unassignItem(c *gin.Context) {
	if err := a.assignments.Unassign(c.Request.Context(), c.Param("id")); err != nil {
		a.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
