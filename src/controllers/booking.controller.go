package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"stayease/src/config"
	"stayease/src/db"
	"stayease/src/lib"
	"stayease/src/lib/mailer"
	"stayease/src/models"
	"stayease/src/types"
	"stayease/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

// CreateBookingIntent opens a Checkout Session for a place/date-range pair
// and hands back the hosted payment URL. Nothing is persisted locally; the
// intent lives entirely in the session metadata until confirmation.
func CreateBookingIntent(ctx *gin.Context) (url *string, status int, err error) {
	var body types.CreateBookingIntentRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	var place models.Place
	dbi := db.GetDb()
	if err := dbi.
		Model(&models.Place{}).
		Where(&models.Place{ID: body.PlaceID}).
		First(&place).
		Error; err != nil {
		return nil, http.StatusNotFound, errors.New("place not found")
	}
	var user models.User
	if err := dbi.
		Model(&models.User{}).
		Where(&models.User{ID: body.UserID}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusNotFound, errors.New("user not found")
	}

	checkoutURL, sessionId, err := utils.CreateBookingCheckout(&place, &body)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	log.Printf("Created booking intent for place %d: session %s\n", place.ID, *sessionId)
	return checkoutURL, http.StatusOK, nil
}

// ConfirmBooking verifies a Checkout Session as paid and commits the
// Booking/Payment pair in one transaction. Confirming the same session twice
// is a no-op: the unique checkout_session_id resolves to the first booking.
func ConfirmBooking(ctx *gin.Context) (booking *models.Booking, status int, err error) {
	var body types.ConfirmBookingRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	dbi := db.GetDb()
	var existing models.Booking
	if err := dbi.
		Model(&models.Booking{}).
		Where("checkout_session_id = ?", body.SessionID).
		First(&existing).
		Error; err == nil {
		return &existing, http.StatusOK, nil
	}

	session, err := lib.RetrieveCheckoutSession(body.SessionID)
	if err != nil {
		log.Printf("[Stripe] Unable to retrieve session %s: %s\n", body.SessionID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		err := errors.New("payment not completed")
		return nil, http.StatusBadRequest, err
	}

	intent, err := parseIntentMetadata(session)
	if err != nil {
		log.Printf("Error reading session metadata: %s\n", err.Error())
		return nil, http.StatusBadRequest, err
	}

	email := ""
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	newBooking := models.Booking{
		PlaceID:           intent.PlaceID,
		UserID:            intent.UserID,
		CheckIn:           intent.CheckIn,
		CheckOut:          intent.CheckOut,
		Email:             email,
		Price:             intent.Total,
		Guests:            intent.Guests,
		Status:            types.BOOKING_PENDING,
		CheckoutSessionID: &session.ID,
	}
	err = dbi.Transaction(func(tx *gorm.DB) error {
		if email == "" {
			var user models.User
			if err := tx.
				Model(&models.User{}).
				Where(&models.User{ID: intent.UserID}).
				First(&user).
				Error; err != nil {
				return err
			}
			newBooking.Email = user.Email
		}
		if err := tx.Create(&newBooking).Error; err != nil {
			return err
		}
		payment := models.Payment{
			UserID:    intent.UserID,
			BookingID: newBooking.ID,
			Amount:    intent.Total,
			Status:    types.PAYMENT_COMPLETED,
			Method:    "card",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// A concurrent confirmation may have won the insert after the
		// pre-check; the unique checkout_session_id keeps the pair singular,
		// so resolve to the stored booking instead of surfacing the conflict.
		var winner models.Booking
		if qerr := dbi.
			Model(&models.Booking{}).
			Where("checkout_session_id = ?", session.ID).
			First(&winner).
			Error; qerr == nil {
			return &winner, http.StatusOK, nil
		}
		log.Printf("Error persisting booking for session %s: %s\n", session.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	go sendBookingConfirmationMail(&newBooking)

	return &newBooking, http.StatusOK, nil
}

type bookingIntent struct {
	UserID   uint
	PlaceID  uint
	CheckIn  time.Time
	CheckOut time.Time
	Guests   uint
	Total    float64
}

func parseIntentMetadata(session *stripe.CheckoutSession) (*bookingIntent, error) {
	md := session.Metadata
	userId, err := strconv.Atoi(md["userId"])
	if err != nil {
		return nil, fmt.Errorf("invalid userId in metadata: %q", md["userId"])
	}
	placeId, err := strconv.Atoi(md["placeId"])
	if err != nil {
		return nil, fmt.Errorf("invalid placeId in metadata: %q", md["placeId"])
	}
	checkIn, err := time.Parse(config.DATE_PARSE_FORMAT, md["checkIn"])
	if err != nil {
		return nil, fmt.Errorf("invalid checkIn in metadata: %q", md["checkIn"])
	}
	checkOut, err := time.Parse(config.DATE_PARSE_FORMAT, md["checkOut"])
	if err != nil {
		return nil, fmt.Errorf("invalid checkOut in metadata: %q", md["checkOut"])
	}
	guests, err := strconv.Atoi(md["totalGuests"])
	if err != nil {
		return nil, fmt.Errorf("invalid totalGuests in metadata: %q", md["totalGuests"])
	}
	total, err := strconv.ParseFloat(md["total"], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid total in metadata: %q", md["total"])
	}
	return &bookingIntent{
		UserID:   uint(userId),
		PlaceID:  uint(placeId),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   uint(guests),
		Total:    total,
	}, nil
}

func sendBookingConfirmationMail(booking *models.Booking) {
	if booking.Email == "" {
		return
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Your booking has been received.</p>
		<p>Check-in: %s<br>Check-out: %s<br>Guests: %d<br>Total: $%.2f</p>
	`, booking.CheckIn.Format(config.DATE_PARSE_FORMAT), booking.CheckOut.Format(config.DATE_PARSE_FORMAT), booking.Guests, booking.Price)
	if err := mailer.NewMailerMessage(&lib.SendMailInput{
		From:     from,
		FromName: "noreply",
		To:       []string{booking.Email},
		Subject:  "Booking confirmation",
		Body:     body,
		Html:     true,
	}); err != nil {
		log.Printf("Could not send confirmation email to [%s]: %s\n", booking.Email, err.Error())
	}
}
