package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

// SetWeeklyFocus activates a new weekly focus; all previous records are
// deactivated in the same store transaction
func SetWeeklyFocus(st *store.PGStore, svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.WeeklyFocusSetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		focus, err := st.SetWeeklyFocus(c.Request.Context(), req)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		refreshAfterWrite(c, svc)
		c.JSON(http.StatusCreated, focus)
	}
}
