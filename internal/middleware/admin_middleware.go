package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duwalace/ZionFlixx/internal/models"
	"github.com/duwalace/ZionFlixx/internal/repository"
)

// AdminMiddleware runs behind JWTMiddleware and re-reads the user's
// role from the store on every request. A token issued before a
// demotion must not keep granting admin access, so the role claim in
// the token is never trusted here.
func AdminMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		user, err := userRepo.FindUserByID(userID)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
