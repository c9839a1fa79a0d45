package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// CreateHomeschoolNote records what a kid worked on
func CreateHomeschoolNote(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.HomeschoolNoteCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		note, err := st.CreateHomeschoolNote(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, note)
	}
}

// UpdateHomeschoolNote edits a homeschool note
func UpdateHomeschoolNote(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req models.HomeschoolNoteUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if err := st.UpdateHomeschoolNote(c.Request.Context(), id, req); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Homeschool note updated"})
	}
}

// DeleteHomeschoolNote removes a homeschool note
func DeleteHomeschoolNote(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := st.DeleteHomeschoolNote(c.Request.Context(), id); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, gin.H{"message": "Homeschool note deleted"})
	}
}
