package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/auth"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dates"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/middleware"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// How many replenish entries the kiosk shows before truncating
const replenishVisibleLimit = 5

// GetDashboard returns the display-ready dashboard view.
// Query parameters: week_of (YYYY-MM-DD), visit (local visit-mode toggle),
// desktop (layout override, wins over the stored preference).
// A valid admin session bypasses privacy filtering entirely.
func GetDashboard(svc *dashboard.Service, jwtService *auth.JWTService, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := dashboard.ViewOptions{
			VisitMode: parseBoolParam(c.Query("visit")),
		}

		if token := middleware.SessionToken(c); token != "" {
			if _, err := jwtService.ValidateToken(token); err == nil {
				opts.Bypass = true
			}
		}

		if weekOf := c.Query("week_of"); weekOf != "" {
			day, err := dates.ParseDateOnly(weekOf, loc)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week_of format. Use YYYY-MM-DD"})
				return
			}
			opts.WeekOf = day
		}

		view := svc.View(opts)

		now, soon := splitReplenish(view.Snapshot.ReplenishItems)
		nowVisible, nowOverflow := dashboard.VisibleWithOverflow(now, replenishVisibleLimit)
		soonVisible, soonOverflow := dashboard.VisibleWithOverflow(soon, replenishVisibleLimit)

		resp := gin.H{
			"state":      view.State,
			"visit_mode": view.VisitMode,
			"today":      view.TodayKey,
			"week_start": view.WeekStart.Format(dates.DateKeyLayout),
			"week":       view.Week,
			"people":     view.Snapshot.People,
			"routines": gin.H{
				"templates": view.Snapshot.RoutineTemplates,
				"checks":    view.Snapshot.RoutineChecks,
			},
			"replenish": gin.H{
				"now":           nowVisible,
				"now_overflow":  nowOverflow,
				"soon":          soonVisible,
				"soon_overflow": soonOverflow,
			},
			"weekly_focus":     view.Snapshot.ActiveFocus(),
			"homeschool_notes": view.Snapshot.HomeschoolNotes,
			"desktop":          ResolveDesktopOverride(c),
		}
		if _, err := svc.State(); err != nil {
			resp["error"] = err.Error()
		}

		c.JSON(http.StatusOK, resp)
	}
}

// RefreshDashboard re-runs the fetch path without waiting for the next load
func RefreshDashboard(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Refresh(c.Request.Context()); err != nil {
			status := http.StatusBadGateway
			switch {
			case errors.Is(err, dashboard.ErrNotConfigured):
				status = http.StatusServiceUnavailable
			case errors.Is(err, dashboard.ErrSessionRequired):
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Dashboard refreshed"})
	}
}

// ToggleRoutine flips the completion state for a routine template on a date
func ToggleRoutine(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		templateID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
			return
		}

		var req models.RoutineToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		completed, err := svc.Toggle(c.Request.Context(), templateID, req.Date)
		if err != nil {
			// completed reports the prior value: nothing changed.
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to save routine check",
				"check": models.RoutineToggleResponse{TemplateID: templateID, Date: req.Date, Completed: completed},
			})
			return
		}

		c.JSON(http.StatusOK, models.RoutineToggleResponse{
			TemplateID: templateID,
			Date:       req.Date,
			Completed:  completed,
		})
	}
}

func splitReplenish(items []models.ReplenishItem) (now, soon []models.ReplenishItem) {
	for _, it := range items {
		if !it.Active {
			continue
		}
		if it.Urgency == models.UrgencyNow {
			now = append(now, it)
		} else {
			soon = append(soon, it)
		}
	}
	return now, soon
}
