package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dates"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// CreateRecurringItem adds a weekly calendar entry
func CreateRecurringItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RecurringItemCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		item, err := st.CreateRecurringItem(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateRecurringItem edits a weekly calendar entry
func UpdateRecurringItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req models.RecurringItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if err := st.UpdateRecurringItem(c.Request.Context(), id, req); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Recurring item updated"})
	}
}

// DeleteRecurringItem removes a weekly calendar entry
func DeleteRecurringItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := st.DeleteRecurringItem(c.Request.Context(), id); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Recurring item deleted"})
	}
}

// CreateOneOffItem adds a dated calendar entry
func CreateOneOffItem(st *store.PGStore, svc *dashboard.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.OneOffItemCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if _, err := dates.ParseDateOnly(req.Date, loc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}

		item, err := st.CreateOneOffItem(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateOneOffItem edits a dated calendar entry
func UpdateOneOffItem(st *store.PGStore, svc *dashboard.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req models.OneOffItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if req.Date != nil {
			if _, err := dates.ParseDateOnly(*req.Date, loc); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
				return
			}
		}

		if err := st.UpdateOneOffItem(c.Request.Context(), id, req); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "One-off item updated"})
	}
}

// DeleteOneOffItem removes a dated calendar entry
func DeleteOneOffItem(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := st.DeleteOneOffItem(c.Request.Context(), id); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "One-off item deleted"})
	}
}
