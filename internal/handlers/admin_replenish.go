package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// CreateReplenishItem adds a replenishment entry
func CreateReplenishItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReplenishItemCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		item, err := st.CreateReplenishItem(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateReplenishItem edits a replenishment entry (including deactivating it
// once restocked)
func UpdateReplenishItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req models.ReplenishItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if err := st.UpdateReplenishItem(c.Request.Context(), id, req); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Replenish item updated"})
	}
}

// DeleteReplenishItem removes a replenishment entry
func DeleteReplenishItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := st.DeleteReplenishItem(c.Request.Context(), id); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Replenish item deleted"})
	}
}
