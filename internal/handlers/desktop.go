package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const desktopCookieName = "desktop_mode"

// ResolveDesktopOverride decides the desktop-layout flag: the query
// parameter always wins over the stored preference cookie; absent both, the
// default is false (non-desktop).
func ResolveDesktopOverride(c *gin.Context) bool {
	if q := c.Query("desktop"); q != "" {
		return parseBoolParam(q)
	}
	if cookie, err := c.Cookie(desktopCookieName); err == nil && cookie != "" {
		return parseBoolParam(cookie)
	}
	return false
}

// parseBoolParam accepts the loose truthy spellings kiosk URLs use
func parseBoolParam(s string) bool {
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return s == "yes" || s == "on"
}
