package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"stayease/src/config"
	"stayease/src/db"
	"stayease/src/models"
	"stayease/src/types"
	"stayease/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthSignup(ctx *gin.Context) (userId *uint, status int, err error) {
	var body types.SignupRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(body.Email)

	dbi := db.GetDb()
	var count int64
	if err := dbi.
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if count > 0 {
		err := errors.New("an account with this email already exists")
		return nil, http.StatusBadRequest, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	user := models.User{
		Username:       body.Username,
		Email:          email,
		Password:       string(hash),
		ProfilePicture: config.DEFAULT_PROFILE_PICTURE,
		Role:           types.ROLE_GUEST,
	}
	if err := dbi.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	}); err != nil {
		log.Printf("Error creating user: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &user.ID, http.StatusOK, nil
}

func AuthSignin(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.SigninRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(body.Email)

	var muser models.User
	dbi := db.GetDb()
	if err := dbi.
		Model(&models.User{}).
		Where("email = ?", email).
		First(&muser).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, errors.New("no account is associated with this email")
		}
		return nil, http.StatusInternalServerError, err
	}
	if muser.Password == "" {
		err := errors.New("this account uses Google sign-in")
		return nil, http.StatusUnauthorized, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(muser.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}
	return &muser, http.StatusOK, nil
}

// AuthGoogle signs a user in from a client-attested Google identity,
// creating the account on first sight. The assertion is not verified against
// the identity provider.
func AuthGoogle(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.GoogleAuthRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(body.Email)

	var muser models.User
	dbi := db.GetDb()
	err = dbi.
		Model(&models.User{}).
		Where("email = ?", email).
		First(&muser).
		Error
	if err == nil {
		return &muser, http.StatusOK, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, http.StatusInternalServerError, err
	}

	picture := body.ProfilePicture
	if picture == "" {
		picture = config.DEFAULT_PROFILE_PICTURE
	}
	muser = models.User{
		Username:       body.Username,
		Email:          email,
		ProfilePicture: picture,
		Role:           types.ROLE_GUEST,
		GoogleUID:      &body.UID,
	}
	if err := dbi.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&muser).Error
	}); err != nil {
		log.Printf("Error creating user from Google identity: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &muser, http.StatusOK, nil
}

// AuthRefresh re-derives the user from a valid refresh cookie so both
// tokens can be reissued.
func AuthRefresh(ctx *gin.Context) (user *models.User, status int, err error) {
	cookie, err := ctx.Cookie(config.REFRESH_TOKEN_COOKIE)
	if err != nil || cookie == "" {
		return nil, http.StatusUnauthorized, errors.New("missing refresh token")
	}
	claims := utils.VerifyAccess(cookie)
	if claims == nil || claims.Kind != types.TOKEN_REFRESH {
		return nil, http.StatusUnauthorized, errors.New("invalid refresh token")
	}
	userId, err := utils.SubjectUserID(claims)
	if err != nil {
		return nil, http.StatusUnauthorized, err
	}

	var muser models.User
	dbi := db.GetDb()
	if err := dbi.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&muser).
		Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("user no longer exists")
	}
	return &muser, http.StatusOK, nil
}
