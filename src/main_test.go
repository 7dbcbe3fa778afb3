package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"stayease/src/config"
	"stayease/src/db"
	"stayease/src/lib"
	"stayease/src/middlewares"
	"stayease/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const rootAdminEmail = "root@stayease.dev"

type TestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Mock   sqlmock.Sqlmock
	Router *gin.Engine
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB, mock
}

// testIdentity stands in for AuthMiddleware so route tests do not need to
// mint cookies. Role and email come from request headers, defaulting to the
// root admin.
func testIdentity(ctx *gin.Context) {
	role := ctx.Request.Header.Get("X-Test-Role")
	if role == "" {
		role = string(types.ROLE_ADMIN)
	}
	email := ctx.Request.Header.Get("X-Test-Email")
	if email == "" {
		email = rootAdminEmail
	}
	ctx.Set("id", uint(1))
	ctx.Set("email", email)
	ctx.Set("username", "tester")
	ctx.Set("role", role)
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ROOT_ADMIN_EMAIL", rootAdminEmail)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
		v.RegisterValidation("gtdate", gtdate)
		v.RegisterValidation("placecategory", placeCategoryValidatorFunc)
	}

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock

	router := setupRouter()
	publicRoutes(router)
	guestAuthRoutes(router)
	authorized := router.Group(apiPrefix)
	authorized.Use(testIdentity)
	placeHandlers(authorized)
	bookingHandlers(authorized)
	reviewHandlers(authorized)
	userHandlers(authorized)
	paymentHandlers(authorized)
	s.Router = router
}

func (s *TestSuite) TearDownTest() {
	assert.NoError(s.T(), s.Mock.ExpectationsWereMet())
}

func (s *TestSuite) request(method, target string, body *strings.Reader, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	if body == nil {
		body = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) TestPingRoute() {
	w := s.request(http.MethodGet, "/", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *TestSuite) TestListPlacesPagination() {
	s.Mock.
		ExpectQuery(`SELECT count\(\*\) FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "country", "location", "price"}).
			AddRow(1, "Sea shack", "PT", "Lisbon", 80.0).
			AddRow(2, "Hillside loft", "PT", "Porto", 120.0))

	w := s.request(http.MethodGet, "/api/place/allPlaces?page=1&limit=2&sortBy=price_asc", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	assert.Equal(s.T(), int64(3), gjson.Get(res, "totalPages").Int())
	assert.Equal(s.T(), int64(1), gjson.Get(res, "currentPage").Int())
	assert.Equal(s.T(), int64(2), gjson.Get(res, "places.#").Int())
	assert.LessOrEqual(s.T(), gjson.Get(res, "places.0.price").Float(), gjson.Get(res, "places.1.price").Float())
}

func (s *TestSuite) TestListPlacesCountryFilter() {
	s.Mock.
		ExpectQuery(`SELECT count\(\*\) FROM "places" WHERE country`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places" WHERE country`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "country", "price"}).
			AddRow(3, "Fjord cabin", "NO", 200.0))

	w := s.request(http.MethodGet, "/api/place/allPlaces?filterCountry=NO", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "NO", gjson.Get(w.Body.String(), "places.0.country").String())
}

func (s *TestSuite) TestListPlacesRejectsOversizedLimit() {
	w := s.request(http.MethodGet, "/api/place/allPlaces?limit=500", nil, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCreatePlaceRoundTrip() {
	s.Mock.ExpectBegin()
	s.Mock.
		ExpectQuery(`INSERT INTO "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	s.Mock.ExpectCommit()

	body := `{"title":"Canal House Amsterdam","country":"NL","location":"Amsterdam","price":150,"photos":["https://img.example/1.jpg"],"place_types":["trending","rooms"],"total_guests":4,"bedrooms":2,"bathrooms":1}`
	w := s.request(http.MethodPost, "/api/place", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	assert.Equal(s.T(), int64(9), gjson.Get(res, "place.id").Int())
	assert.Equal(s.T(), "Canal House Amsterdam", gjson.Get(res, "place.title").String())
	assert.Equal(s.T(), "canal-house-amsterdam", gjson.Get(res, "place.slug").String())
	assert.Equal(s.T(), float64(150), gjson.Get(res, "place.price").Float())

	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "country", "location", "price"}).
			AddRow(9, "Canal House Amsterdam", "canal-house-amsterdam", "NL", "Amsterdam", 150.0))

	w = s.request(http.MethodGet, "/api/place/9", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Canal House Amsterdam", gjson.Get(w.Body.String(), "place.title").String())
}

func (s *TestSuite) TestCreatePlaceRejectsUnknownCategory() {
	body := `{"title":"Moon Base","country":"XX","location":"Mare Tranquillitatis","price":9000,"photos":["https://img.example/moon.jpg"],"place_types":["orbital"]}`
	w := s.request(http.MethodPost, "/api/place", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestGetPlace() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price"}).
			AddRow(7, "Canal house", 150.0))

	w := s.request(http.MethodGet, "/api/place/7", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(7), gjson.Get(w.Body.String(), "place.id").Int())
}

func (s *TestSuite) TestGetPlaceNotFound() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnError(gorm.ErrRecordNotFound)

	w := s.request(http.MethodGet, "/api/place/999", nil, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "place not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestCreateBookingIntentUnknownPlace() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnError(gorm.ErrRecordNotFound)

	checkIn := time.Now().AddDate(0, 0, 7).Format(config.DATE_PARSE_FORMAT)
	checkOut := time.Now().AddDate(0, 0, 10).Format(config.DATE_PARSE_FORMAT)
	body := fmt.Sprintf(`{"place_id":999,"user_id":1,"check_in":%q,"check_out":%q,"total_guests":2,"total":240}`, checkIn, checkOut)

	w := s.request(http.MethodPost, "/api/booking/create-booking-intent", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "place not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestCreateBookingIntentRejectsPastCheckIn() {
	checkIn := time.Now().AddDate(0, 0, -7).Format(config.DATE_PARSE_FORMAT)
	checkOut := time.Now().AddDate(0, 0, 3).Format(config.DATE_PARSE_FORMAT)
	body := fmt.Sprintf(`{"place_id":1,"user_id":1,"check_in":%q,"check_out":%q,"total_guests":2,"total":240}`, checkIn, checkOut)

	w := s.request(http.MethodPost, "/api/booking/create-booking-intent", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestConfirmBookingRequiresSessionID() {
	w := s.request(http.MethodPost, "/api/booking/confirm-booking", strings.NewReader(`{}`), nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestConfirmBookingIdempotent() {
	// Second confirmation of the same session resolves to the stored booking
	// before any provider call happens.
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings" WHERE checkout_session_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "user_id", "price", "status", "checkout_session_id"}).
			AddRow(11, 7, 1, 240.0, "PENDING", "cs_test_123"))

	w := s.request(http.MethodPost, "/api/booking/confirm-booking", strings.NewReader(`{"session_id":"cs_test_123"}`), nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	assert.True(s.T(), gjson.Get(res, "success").Bool())
	assert.Equal(s.T(), int64(11), gjson.Get(res, "booking.id").Int())
	assert.Equal(s.T(), "cs_test_123", gjson.Get(res, "booking.checkout_session_id").String())
}

func (s *TestSuite) TestConfirmBookingResolvesInsertRace() {
	// A parallel confirmation wins the insert between the pre-check and the
	// transaction; the loser must come back with the stored booking, not a 500.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_race_1","object":"checkout.session","payment_status":"paid","customer_details":{"email":"wanderer@example.com"},"metadata":{"userId":"1","placeId":"7","checkIn":"2026-09-10","checkOut":"2026-09-12","totalGuests":"2","total":"240"}}`)
	}))
	defer srv.Close()
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{URL: stripe.String(srv.URL)})
	lib.NewStripeClient(stripe.NewClient("sk_test_stub", stripe.WithBackends(&stripe.Backends{API: backend})))

	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings" WHERE checkout_session_id`).
		WillReturnError(gorm.ErrRecordNotFound)
	s.Mock.ExpectBegin()
	s.Mock.
		ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_bookings_checkout_session_id"`))
	s.Mock.ExpectRollback()
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings" WHERE checkout_session_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "user_id", "price", "status", "checkout_session_id"}).
			AddRow(21, 7, 1, 240.0, "PENDING", "cs_race_1"))

	w := s.request(http.MethodPost, "/api/booking/confirm-booking", strings.NewReader(`{"session_id":"cs_race_1"}`), nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(21), gjson.Get(w.Body.String(), "booking.id").Int())
}

func (s *TestSuite) TestAllBookingsRequiresAdmin() {
	w := s.request(http.MethodGet, "/api/booking/all-Bookings", nil, map[string]string{
		"X-Test-Role": string(types.ROLE_GUEST),
	})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *TestSuite) TestAllBookings() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "user_id", "price", "status"}).
			AddRow(2, 7, 1, 240.0, "CONFIRMED").
			AddRow(1, 3, 1, 80.0, "PENDING"))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "Canal house").AddRow(3, "Fjord cabin"))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "tester"))

	w := s.request(http.MethodGet, "/api/booking/all-Bookings", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), int64(2), gjson.Get(w.Body.String(), "count").Int())
}

func (s *TestSuite) TestUserBookingsExcludesCancelled() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "wanderer", "wanderer@example.com"))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings" WHERE user_id = (.+) AND status <>`).
		WithArgs(sqlmock.AnyArg(), string(types.BOOKING_CANCELLED)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "user_id", "price", "status"}).
			AddRow(4, 7, 1, 240.0, "CONFIRMED").
			AddRow(2, 3, 1, 80.0, "PENDING"))
	s.Mock.
		ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(7, "Canal house").
			AddRow(3, "Fjord cabin"))

	w := s.request(http.MethodGet, "/api/booking/user-bookings?email=wanderer@example.com", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	assert.Equal(s.T(), int64(2), gjson.Get(res, "count").Int())
	assert.Equal(s.T(), int64(4), gjson.Get(res, "bookings.0.id").Int())
	assert.Equal(s.T(), "Canal house", gjson.Get(res, "bookings.0.place.title").String())
}

func (s *TestSuite) TestUserBookingsUnknownEmail() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	w := s.request(http.MethodGet, "/api/booking/user-bookings?email=nobody@example.com", nil, nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestUpdateBookingStatusNormalizesSpelling() {
	s.Mock.ExpectBegin()
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(5, "PENDING"))
	s.Mock.
		ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.request(http.MethodPut, "/api/booking/5", strings.NewReader(`{"status":"CANCELED"}`), nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "CANCELLED", gjson.Get(w.Body.String(), "status").String())
}

func (s *TestSuite) TestUpdateBookingStatusNotFound() {
	s.Mock.ExpectBegin()
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnError(gorm.ErrRecordNotFound)
	s.Mock.ExpectRollback()

	w := s.request(http.MethodPut, "/api/booking/999", strings.NewReader(`{"status":"CONFIRMED"}`), nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestCancelBookingHardDeletes() {
	s.Mock.ExpectBegin()
	s.Mock.
		ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(5, "CONFIRMED"))
	s.Mock.
		ExpectExec(`DELETE FROM "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.request(http.MethodDelete, "/api/booking/5", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Booking cancelled", gjson.Get(w.Body.String(), "message").String())
}

func (s *TestSuite) TestGetPaymentSurvivesBookingDeletion() {
	paymentId := uuid.New()
	s.Mock.
		ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "booking_id", "amount", "status", "method"}).
			AddRow(paymentId.String(), 1, 5, 240.0, "completed", "card"))

	w := s.request(http.MethodGet, "/api/payment/"+paymentId.String(), nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), paymentId.String(), gjson.Get(w.Body.String(), "payment.id").String())
}

func (s *TestSuite) TestGetPaymentRejectsBadID() {
	w := s.request(http.MethodGet, "/api/payment/not-a-uuid", nil, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestSignupRejectsShortUsername() {
	body := `{"username":"abc","email":"abc@example.com","password":"longenough"}`
	w := s.request(http.MethodPost, "/api/auth/signup", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestSignupDuplicateEmail() {
	s.Mock.
		ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"username":"wanderer","email":"taken@example.com","password":"longenough"}`
	w := s.request(http.MethodPost, "/api/auth/signup", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestSigninSetsCookies() {
	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.DefaultCost)
	assert.NoError(s.T(), err)

	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role"}).
			AddRow(1, "wanderer", "wanderer@example.com", string(hash), "GUEST"))

	body := `{"email":"wanderer@example.com","password":"longenough"}`
	w := s.request(http.MethodPost, "/api/auth/signin", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	cookies := w.Header().Values("Set-Cookie")
	joined := strings.Join(cookies, ";")
	assert.Contains(s.T(), joined, config.ACCESS_TOKEN_COOKIE)
	assert.Contains(s.T(), joined, config.REFRESH_TOKEN_COOKIE)
	assert.Contains(s.T(), joined, "HttpOnly")

	// Password hash never leaves the API.
	assert.False(s.T(), gjson.Get(w.Body.String(), "user.password").Exists())
}

func (s *TestSuite) TestSigninWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.DefaultCost)
	assert.NoError(s.T(), err)

	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role"}).
			AddRow(1, "wanderer", "wanderer@example.com", string(hash), "GUEST"))

	body := `{"email":"wanderer@example.com","password":"wrongpassword"}`
	w := s.request(http.MethodPost, "/api/auth/signin", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *TestSuite) TestSigninUnknownEmail() {
	s.Mock.
		ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	body := `{"email":"nobody@example.com","password":"longenough"}`
	w := s.request(http.MethodPost, "/api/auth/signin", strings.NewReader(body), nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *TestSuite) TestRefreshRequiresCookie() {
	w := s.request(http.MethodPost, "/api/auth/refresh", nil, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *TestSuite) TestLogoutClearsCookies() {
	w := s.request(http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	joined := strings.Join(w.Header().Values("Set-Cookie"), ";")
	assert.Contains(s.T(), joined, config.ACCESS_TOKEN_COOKIE+"=;")
	assert.Contains(s.T(), joined, config.REFRESH_TOKEN_COOKIE+"=;")
}

func (s *TestSuite) TestDeletePlaceRequiresRootAdmin() {
	w := s.request(http.MethodDelete, "/api/place/7", nil, map[string]string{
		"X-Test-Email": "admin@elsewhere.dev",
	})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()
	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	paymentHandlers(authorized)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/payment/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
