package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const deviceCookie = "paypya_device"

// DeviceMiddleware identifies the browsing device behind storefront
// requests. An existing id is taken from the X-Device-ID header or the
// session cookie; otherwise a fresh UUID is issued and echoed back in
// both places so the client can keep it.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			if cookie, err := c.Cookie(deviceCookie); err == nil {
				deviceID = cookie
			}
		}
		if deviceID == "" {
			deviceID = uuid.NewString()
			c.SetCookie(deviceCookie, deviceID, 60*60*24*365, "/", "", false, true)
		}

		c.Header("X-Device-ID", deviceID)
		c.Set("device_id", deviceID)
		c.Next()
	}
}
