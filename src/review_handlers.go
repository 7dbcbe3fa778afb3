package main

import (
	"errors"
	"net/http"

	"stayease/src/db"
	"stayease/src/models"
	"stayease/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func reviewPublicRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/review/all-reviews", func(ctx *gin.Context) {
			var reviews []models.Review
			db := db.GetDb()
			if err := db.
				Model(&models.Review{}).
				Preload("User").
				Order("created_at DESC").
				Find(&reviews).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
		}).
		GET("/review/reviews-by-place/:place", func(ctx *gin.Context) {
			var params struct {
				Place uint `uri:"place" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var reviews []models.Review
			db := db.GetDb()
			if err := db.
				Model(&models.Review{}).
				Where("place_id = ?", params.Place).
				Preload("User").
				Order("created_at DESC").
				Find(&reviews).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
		})
	return g
}

func reviewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/review/add-review", func(ctx *gin.Context) {
			var body types.AddReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			review := models.Review{
				UserID:   userId,
				PlaceID:  body.PlaceID,
				Comments: body.Comments,
				Rating:   body.Rating,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var place models.Place
				if err := tx.
					Model(&models.Place{}).
					Where(&models.Place{ID: body.PlaceID}).
					First(&place).
					Error; err != nil {
					return err
				}
				return tx.Create(&review).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "review": review})
		}).
		PUT("/review/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			updates := map[string]any{}
			if body.Comments != nil {
				updates["comments"] = *body.Comments
			}
			if body.Rating != nil {
				updates["rating"] = *body.Rating
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var review models.Review
				if err := tx.
					Model(&models.Review{}).
					Where(&models.Review{ID: params.ID}).
					First(&review).
					Error; err != nil {
					return err
				}
				if review.UserID != userId && role != types.ROLE_ADMIN {
					return errForbidden
				}
				if len(updates) == 0 {
					return nil
				}
				return tx.
					Model(&models.Review{}).
					Where(&models.Review{ID: params.ID}).
					Updates(updates).
					Error
			})
			if err != nil {
				reviewErrorResponse(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		}).
		DELETE("/review/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var review models.Review
				if err := tx.
					Model(&models.Review{}).
					Where(&models.Review{ID: params.ID}).
					First(&review).
					Error; err != nil {
					return err
				}
				if review.UserID != userId && role != types.ROLE_ADMIN {
					return errForbidden
				}
				return tx.Delete(&models.Review{}, params.ID).Error
			})
			if err != nil {
				reviewErrorResponse(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	return g
}

var errForbidden = errors.New("insufficient permissions")

func reviewErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
	case errors.Is(err, errForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
