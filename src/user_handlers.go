package main

import (
	"errors"
	"net/http"

	"stayease/src/db"
	"stayease/src/middlewares"
	"stayease/src/models"
	"stayease/src/types"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/user/all", middlewares.RequireRoles(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var users []models.User
			db := db.GetDb()
			if err := db.
				Model(&models.User{}).
				Order("created_at DESC").
				Find(&users).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
		}).
		PUT("/user/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			if params.ID != userId && role != types.ROLE_ADMIN {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Username != nil {
				updates["username"] = *body.Username
			}
			if body.ProfilePicture != nil {
				updates["profile_picture"] = *body.ProfilePicture
			}
			if body.Password != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				updates["password"] = string(hash)
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var user models.User
				if err := tx.
					Model(&models.User{}).
					Where(&models.User{ID: params.ID}).
					First(&user).
					Error; err != nil {
					return err
				}
				if len(updates) == 0 {
					return nil
				}
				return tx.
					Model(&models.User{}).
					Where(&models.User{ID: params.ID}).
					Updates(updates).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		}).
		DELETE("/user/:id", middlewares.RequireRootAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var user models.User
				if err := tx.
					Model(&models.User{}).
					Where(&models.User{ID: params.ID}).
					First(&user).
					Error; err != nil {
					return err
				}
				return tx.Delete(&models.User{}, params.ID).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	return g
}
