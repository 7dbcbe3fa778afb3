package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"stayease/src/db"
	"stayease/src/lib"
	"stayease/src/middlewares"
	"stayease/src/models"
	"stayease/src/models/scopes"
	"stayease/src/types"
	"stayease/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func placeCacheKey(id string) string {
	return fmt.Sprintf("place:%s", id)
}

func applyCatalogFilters(tx *gorm.DB, query *types.ListPlacesQuery) *gorm.DB {
	if query.FilterCountry != "" {
		tx = tx.Where("country = ?", query.FilterCountry)
	}
	// searchTitle matches against location, not title. Kept as shipped, the
	// storefront search box depends on it.
	if query.SearchTitle != "" {
		tx = tx.Where("location ILIKE ?", "%"+query.SearchTitle+"%")
	}
	return tx
}

func placePublicRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/place/allPlaces", func(ctx *gin.Context) {
			var query types.ListPlacesQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var total int64
			if err := applyCatalogFilters(db.Model(&models.Place{}), &query).
				Count(&total).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			var places []models.Place
			tx := applyCatalogFilters(db.Model(&models.Place{}), &query)
			if order := utils.SortClause(query.SortBy); order != "" {
				tx = tx.Order(order)
			}
			offset := (query.Page - 1) * query.Limit
			if err := tx.
				Limit(query.Limit).
				Offset(offset).
				Find(&places).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"places":      places,
				"totalPages":  utils.TotalPages(total, query.Limit),
				"currentPage": query.Page,
			})
		}).
		GET("/place/:id", func(ctx *gin.Context) {
			idParam := ctx.Params.ByName("id")
			atoi, err := strconv.Atoi(idParam)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			placeId := uint(atoi)

			if rd := lib.GetRedisClient(); rd != nil {
				if val := rd.JSONGet(context.Background(), placeCacheKey(idParam)).Val(); val != "" {
					var cached models.Place
					if err := json.Unmarshal([]byte(val), &cached); err == nil {
						ctx.JSON(http.StatusOK, gin.H{"place": cached})
						return
					}
				}
			}

			var place models.Place
			db := db.GetDb()
			if err := db.
				Model(&models.Place{}).
				Scopes(scopes.WithID(placeId)).
				First(&place).
				Error; err != nil {
				err := errors.New("place not found")
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				if _, err := rd.JSONSet(context.Background(), placeCacheKey(idParam), "$", &place).Result(); err != nil {
					log.Printf("[redis] Error caching place %d: %s\n", place.ID, err.Error())
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"place": place})
		})
	return g
}

func placeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	hostOrAdmin := middlewares.RequireRoles(types.ROLE_ADMIN, types.ROLE_HOST)
	g.
		POST("/place", hostOrAdmin, func(ctx *gin.Context) {
			var body types.CreatePlaceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hostId := body.Host
			if hostId == nil && types.Role(ctx.GetString("role")) == types.ROLE_HOST {
				userId := ctx.GetUint("id")
				hostId = &userId
			}
			place := models.Place{
				Title:        body.Title,
				Slug:         slug.Make(body.Title),
				Description:  body.Description,
				Country:      body.Country,
				Location:     body.Location,
				Price:        body.Price,
				Photos:       types.StringList(body.Photos),
				Availability: body.Availability,
				PlaceTypes:   types.StringList(body.PlaceTypes),
				TotalGuests:  body.TotalGuests,
				Bedrooms:     body.Bedrooms,
				Bathrooms:    body.Bathrooms,
				HostID:       hostId,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&place).Error
			}); err != nil {
				log.Printf("Error creating place: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "place": place})
		}).
		PUT("/place/:id", hostOrAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdatePlaceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Title != nil {
				updates["title"] = *body.Title
				updates["slug"] = slug.Make(*body.Title)
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			if body.Country != nil {
				updates["country"] = *body.Country
			}
			if body.Location != nil {
				updates["location"] = *body.Location
			}
			if body.Price != nil {
				updates["price"] = *body.Price
			}
			if body.Photos != nil {
				updates["photos"] = types.StringList(body.Photos)
			}
			if body.Availability != nil {
				updates["availability"] = *body.Availability
			}
			if body.PlaceTypes != nil {
				updates["place_types"] = types.StringList(body.PlaceTypes)
			}
			if body.TotalGuests != nil {
				updates["total_guests"] = *body.TotalGuests
			}
			if body.Bedrooms != nil {
				updates["bedrooms"] = *body.Bedrooms
			}
			if body.Bathrooms != nil {
				updates["bathrooms"] = *body.Bathrooms
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var place models.Place
				if err := tx.
					Model(&models.Place{}).
					Where(&models.Place{ID: params.ID}).
					First(&place).
					Error; err != nil {
					return err
				}
				if len(updates) == 0 {
					return nil
				}
				return tx.
					Model(&models.Place{}).
					Where(&models.Place{ID: params.ID}).
					Updates(updates).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				rd.Del(context.Background(), placeCacheKey(fmt.Sprint(params.ID)))
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		}).
		DELETE("/place/:id", middlewares.RequireRootAdmin, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var place models.Place
				if err := tx.
					Model(&models.Place{}).
					Where(&models.Place{ID: params.ID}).
					First(&place).
					Error; err != nil {
					return err
				}
				return tx.Delete(&models.Place{}, params.ID).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				rd.Del(context.Background(), placeCacheKey(fmt.Sprint(params.ID)))
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	return g
}
