package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"slices"
	"strconv"
	"time"

	"stayease/src/boot"
	"stayease/src/config"
	"stayease/src/controllers"
	"stayease/src/db"
	"stayease/src/lib"
	"stayease/src/middlewares"
	"stayease/src/models"
	"stayease/src/types"
	"stayease/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api"
)

var bookableDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !datetime.Before(today)
}

var gtdate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	fielddatetime, err := time.Parse(config.DATE_PARSE_FORMAT, fieldValue)
	if err != nil {
		return false
	}
	return datetime.After(fielddatetime)
}

var placeCategoryValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	category, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return slices.Contains(types.PlaceCategories, category)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	api := g.Group(apiPrefix)
	return api
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	placePublicRoutes(api)
	reviewPublicRoutes(api)
	return api
}

func issueSession(ctx *gin.Context, user *models.User) error {
	accessToken, refreshToken, err := utils.IssueTokens(user)
	if err != nil {
		return err
	}
	utils.SetAuthCookies(ctx, accessToken, refreshToken)

	if rd := lib.GetRedisClient(); rd != nil {
		if _, err := rd.JSONSet(context.Background(), fmt.Sprintf("%d:user", user.ID), "$", user).Result(); err != nil {
			log.Printf("[redis] Error updating user cache: %s\n", err.Error())
		}
	}
	return nil
}

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	auth := api.Group("/auth")
	auth.
		POST("/signup", func(ctx *gin.Context) {
			uid, status, err := controllers.AuthSignup(ctx)
			if err != nil {
				log.Printf("[AuthSignup] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "id": uid})
		}).
		POST("/signin", func(ctx *gin.Context) {
			user, status, err := controllers.AuthSignin(ctx)
			if err != nil {
				log.Printf("[AuthSignin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			if err := issueSession(ctx, user); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
		}).
		POST("/google", func(ctx *gin.Context) {
			user, status, err := controllers.AuthGoogle(ctx)
			if err != nil {
				log.Printf("[AuthGoogle] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			if err := issueSession(ctx, user); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
		}).
		POST("/refresh", func(ctx *gin.Context) {
			user, status, err := controllers.AuthRefresh(ctx)
			if err != nil {
				log.Printf("[AuthRefresh] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			if err := issueSession(ctx, user); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		}).
		POST("/logout", func(ctx *gin.Context) {
			// Stateless logout: both cookies are cleared, nothing is revoked
			// server side.
			utils.ClearAuthCookies(ctx)
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
	return auth
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	dbi := boot.InitDb()
	boot.SeedRootAdmin(dbi)

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
		v.RegisterValidation("gtdate", gtdate)
		v.RegisterValidation("placecategory", placeCategoryValidatorFunc)
	}

	router = maintenanceModeMiddleware(router)

	publicRoutes(router)

	guestAuthRoutes(router)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = placeHandlers(authorized)
		authorized = bookingHandlers(authorized)
		authorized = reviewHandlers(authorized)
		authorized = userHandlers(authorized)
		authorized = paymentHandlers(authorized)

		authorized.
			GET("/user/me", func(ctx *gin.Context) {
				userId := ctx.GetUint("id")
				if rd := lib.GetRedisClient(); rd != nil {
					cacheKey := fmt.Sprintf("%d:user", userId)
					if res := rd.JSONGet(context.Background(), cacheKey).Val(); res != "" {
						ctx.Data(http.StatusOK, "application/json", []byte(res))
						return
					}
				}
				var user models.User
				dbi := db.GetDb()
				if err := dbi.
					Model(&models.User{}).
					Where(&models.User{ID: userId}).
					First(&user).
					Error; err != nil {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"user": user})
			})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
