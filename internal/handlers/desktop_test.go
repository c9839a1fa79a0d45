package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func desktopContext(t *testing.T, url string, cookie string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: desktopCookieName, Value: cookie})
	}
	c.Request = req
	return c
}

func TestResolveDesktopOverrideDefaultsFalse(t *testing.T) {
	c := desktopContext(t, "/", "")
	assert.False(t, ResolveDesktopOverride(c))
}

func TestResolveDesktopOverrideQueryParam(t *testing.T) {
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=true", "")))
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=1", "")))
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=yes", "")))
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=on", "")))
	assert.False(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=false", "")))
	assert.False(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=nonsense", "")))
}

func TestResolveDesktopOverrideCookieFallback(t *testing.T) {
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/", "true")))
	assert.False(t, ResolveDesktopOverride(desktopContext(t, "/", "false")))
}

func TestResolveDesktopOverrideQueryBeatsCookie(t *testing.T) {
	// An explicit query value overrides the stored preference both ways.
	assert.False(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=false", "true")))
	assert.True(t, ResolveDesktopOverride(desktopContext(t, "/?desktop=true", "false")))
}
