package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func deviceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(DeviceMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(200, c.GetString("device_id"))
	})
	return router
}

func TestDeviceMiddlewareIssuesID(t *testing.T) {
	router := deviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	deviceID := w.Body.String()
	if _, err := uuid.Parse(deviceID); err != nil {
		t.Fatalf("issued device id %q is not a UUID: %v", deviceID, err)
	}
	if got := w.Header().Get("X-Device-ID"); got != deviceID {
		t.Errorf("X-Device-ID header = %q, want %q", got, deviceID)
	}
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) == 0 || !strings.Contains(cookies[0], "paypya_device=") {
		t.Errorf("device cookie not set: %v", cookies)
	}
}

func TestDeviceMiddlewareKeepsHeaderID(t *testing.T) {
	router := deviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Device-ID", "existing-device")
	router.ServeHTTP(w, req)

	if got := w.Body.String(); got != "existing-device" {
		t.Errorf("device id = %q, want the header value to win", got)
	}
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) != 0 {
		t.Errorf("no cookie should be issued for a known device, got %v", cookies)
	}
}

func TestDeviceMiddlewareReadsCookie(t *testing.T) {
	router := deviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "paypya_device", Value: "cookie-device"})
	router.ServeHTTP(w, req)

	if got := w.Body.String(); got != "cookie-device" {
		t.Errorf("device id = %q, want the cookie value", got)
	}
}
