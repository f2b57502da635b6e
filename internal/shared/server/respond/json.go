package respond

import "github.com/gin-gonic/gin"

// JSON writes a JSON response with the given status. All non-HTML success
// responses go through here so the API surface stays uniform with Error.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
