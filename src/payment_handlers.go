package main

import (
	"net/http"

	"stayease/src/db"
	"stayease/src/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Payments have no mutation endpoints. Rows are written only by the booking
// confirmation flow and survive a booking hard-delete.
func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payment/:id", func(ctx *gin.Context) {
			idParam := ctx.Params.ByName("id")
			paymentId, err := uuid.Parse(idParam)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var payment models.Payment
			db := db.GetDb()
			if err := db.
				Model(&models.Payment{}).
				Where("id = ?", paymentId).
				First(&payment).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"payment": payment})
		})
	return g
}
