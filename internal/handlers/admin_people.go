package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// Admin writes go straight through the store and then refresh the dashboard
// snapshot as a whole; there is no incremental merge.
func refreshAfterWrite(c *gin.Context, svc *dashboard.Service) {
	if err := svc.Refresh(c.Request.Context()); err != nil {
		slog.Warn("refresh after admin write failed", "error", err)
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database write failed", "details": err.Error()})
}

// CreatePerson adds a household member
func CreatePerson(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PersonCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		person, err := st.CreatePerson(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, person)
	}
}

// UpdatePerson edits a household member
func UpdatePerson(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req models.PersonUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if err := st.UpdatePerson(c.Request.Context(), id, req); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Person updated"})
	}
}

// DeletePerson removes a household member
func DeletePerson(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := st.DeletePerson(c.Request.Context(), id); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Person deleted"})
	}
}
