package utils

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"stayease/src/config"
	"stayease/src/lib"
	"stayease/src/models"
	"stayease/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stripe/stripe-go/v82"
)

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func signToken(user *models.User, kind types.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Username: user.Username,
		Role:     user.Role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// IssueTokens mints the access/refresh credential pair for a user.
func IssueTokens(user *models.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = signToken(user, types.TOKEN_ACCESS, config.ACCESS_TOKEN_TTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = signToken(user, types.TOKEN_REFRESH, config.REFRESH_TOKEN_TTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// VerifyAccess decodes a token and returns its claims, or nil on any
// verification failure (expired, malformed, wrong secret). It never panics.
func VerifyAccess(token string) *types.Claims {
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}
	return claims
}

func SubjectUserID(claims *types.Claims) (uint, error) {
	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, err
	}
	return uint(uid), nil
}

func SetAuthCookies(ctx *gin.Context, accessToken string, refreshToken string) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(config.ACCESS_TOKEN_COOKIE, accessToken, int(config.ACCESS_TOKEN_TTL.Seconds()), "/", "", true, true)
	ctx.SetCookie(config.REFRESH_TOKEN_COOKIE, refreshToken, int(config.REFRESH_TOKEN_TTL.Seconds()), "/", "", true, true)
}

func ClearAuthCookies(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(config.ACCESS_TOKEN_COOKIE, "", -1, "/", "", true, true)
	ctx.SetCookie(config.REFRESH_TOKEN_COOKIE, "", -1, "/", "", true, true)
}

func IsRootAdmin(email string) bool {
	root := os.Getenv("ROOT_ADMIN_EMAIL")
	return root != "" && email == root
}

// TotalPages is ceil(total/limit) for the catalog pagination envelope.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// SortClause maps the catalog sortBy parameter to an ORDER BY fragment.
// Unknown values leave natural order.
func SortClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "price asc"
	case "price_desc":
		return "price desc"
	default:
		return ""
	}
}

// CreateBookingCheckout opens a hosted Checkout Session for a booking
// attempt. All intent state travels in the session metadata; nothing is
// written locally until the session is confirmed as paid.
func CreateBookingCheckout(place *models.Place, params *types.CreateBookingIntentRequestBody) (*string, *string, error) {
	sc := lib.GetStripeClient()
	appHost := os.Getenv("APP_HOST")
	metadata := map[string]string{
		"userId":      fmt.Sprint(params.UserID),
		"placeId":     fmt.Sprint(params.PlaceID),
		"checkIn":     params.CheckIn,
		"checkOut":    params.CheckOut,
		"totalGuests": fmt.Sprint(params.TotalGuests),
		"total":       strconv.FormatFloat(params.Total, 'f', -1, 64),
	}
	productData := &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripe.String(place.Location),
	}
	if len(place.Photos) > 0 {
		productData.Images = []*string{stripe.String(place.Photos[0])}
	}
	createParams := stripe.CheckoutSessionCreateParams{
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-success?session_id={CHECKOUT_SESSION_ID}", appHost)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/payment-cancelled", appHost)),
		UIMode:     stripe.String("hosted"),
		Mode:       stripe.String("payment"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:    stripe.String("usd"),
					UnitAmount:  stripe.Int64(int64(math.Round(params.Total * 100))),
					ProductData: productData,
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: metadata,
	}
	checkoutSession, err := sc.V1CheckoutSessions.Create(context.Background(), &createParams)
	if err != nil {
		log.Printf("CreateBookingCheckout failed: %s\n", err.Error())
		return nil, nil, err
	}
	log.Printf("CheckoutSessionID: %s\n", checkoutSession.ID)
	return &checkoutSession.URL, &checkoutSession.ID, nil
}
