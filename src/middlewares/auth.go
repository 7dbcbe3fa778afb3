package middlewares

import (
	"log"
	"net/http"

	"stayease/src/config"
	"stayease/src/db"
	"stayease/src/models"
	"stayease/src/types"
	"stayease/src/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates requests via the accessToken cookie. Any
// verification failure short-circuits with 401, the error never escapes.
func AuthMiddleware(ctx *gin.Context) {
	cookie, err := ctx.Cookie(config.ACCESS_TOKEN_COOKIE)
	if err != nil || cookie == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
		return
	}
	claims := utils.VerifyAccess(cookie)
	if claims == nil || claims.Kind != types.TOKEN_ACCESS {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
		return
	}
	userId, err := utils.SubjectUserID(claims)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var user models.User
	db := db.GetDb()
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&user).
		Error; err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("username", user.Username)
	ctx.Set("role", string(user.Role))
}

// RequireRoles gates a route group on the role claim set by AuthMiddleware.
func RequireRoles(roles ...types.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := types.Role(ctx.GetString("role"))
		for _, r := range roles {
			if role == r {
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// RequireRootAdmin is the super-admin gate used by destructive endpoints.
func RequireRootAdmin(ctx *gin.Context) {
	role := types.Role(ctx.GetString("role"))
	email := ctx.GetString("email")
	if role != types.ROLE_ADMIN || !utils.IsRootAdmin(email) {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}
}
