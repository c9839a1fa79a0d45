package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// GetSettings returns the dashboard settings from the current snapshot
func GetSettings(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := svc.Snapshot()
		if !ok {
			c.JSON(http.StatusOK, models.Settings{})
			return
		}
		c.JSON(http.StatusOK, snap.Settings)
	}
}

// UpdateSettings writes the persisted visit-mode flag
func UpdateSettings(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SettingsUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		settings := models.Settings{}
		if snap, ok := svc.Snapshot(); ok {
			settings = snap.Settings
		}
		if req.VisitMode != nil {
			settings.VisitMode = *req.VisitMode
		}

		if err := st.UpdateSettings(c.Request.Context(), settings); err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusOK, settings)
	}
}
