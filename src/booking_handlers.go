package main

import (
	"errors"
	"log"
	"net/http"

	"stayease/src/controllers"
	"stayease/src/db"
	"stayease/src/middlewares"
	"stayease/src/models"
	"stayease/src/models/scopes"
	"stayease/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/booking/create-booking-intent", func(ctx *gin.Context) {
			url, status, err := controllers.CreateBookingIntent(ctx)
			if err != nil {
				log.Printf("[CreateBookingIntent] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "url": url})
		}).
		POST("/booking/confirm-booking", func(ctx *gin.Context) {
			booking, status, err := controllers.ConfirmBooking(ctx)
			if err != nil {
				log.Printf("[ConfirmBooking] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Booking confirmed",
				"booking": booking,
			})
		}).
		GET("/booking/all-Bookings", middlewares.RequireRoles(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var bookings []models.Booking
			db := db.GetDb()
			if err := db.
				Model(&models.Booking{}).
				Preload("Place").
				Preload("User").
				Order("created_at DESC").
				Find(&bookings).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
		}).
		GET("/booking/user-bookings", func(ctx *gin.Context) {
			email := ctx.Query("email")
			if email == "" {
				email = ctx.GetString("email")
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Model(&models.User{}).
				Where("email = ?", email).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			var bookings []models.Booking
			if err := db.
				Model(&models.Booking{}).
				Where("user_id = ?", user.ID).
				Scopes(scopes.WithoutStatus(types.BOOKING_CANCELLED), scopes.NewestFirst).
				Preload("Place").
				Find(&bookings).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
		}).
		PUT("/booking/:id", middlewares.RequireRoles(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Unconditional overwrite. There is no transition table and no
			// terminal-state protection.
			newStatus := types.NormalizeBookingStatus(body.Status)
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID}).
					First(&booking).
					Error; err != nil {
					return err
				}
				return tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID}).
					Update("status", newStatus).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				log.Printf("Could not update booking %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "status": newStatus})
		}).
		DELETE("/booking/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			// Hard delete. The associated Payment row stays behind and keeps
			// the money trail.
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID}).
					First(&booking).
					Error; err != nil {
					return err
				}
				return tx.Unscoped().Delete(&models.Booking{}, params.ID).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
					return
				}
				log.Printf("Could not cancel booking %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
		})
	return g
}
