//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/tests/common/authtest"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/dbtest"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	bookingURL  = "/api/bookings/%s"
	statusURL   = "/api/bookings/%s/status?status=%s"
	receiptURL  = "/api/bookings/%s/receipt"
	paymentURL  = "/api/payments/process"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type actors struct {
	customerID    uuid.UUID
	customerToken string
	otherToken    string
	adminToken    string
	vehicleID     uuid.UUID
}

func (s *BookingSuite) seed() actors {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.DB, "Jane Driver", "jane@example.com")
	otherID := dbtest.CreateTestCustomer(t, s.DB, "Sam Other", "sam@example.com")
	adminID := dbtest.CreateTestAdmin(t, s.DB, "admin@example.com")

	return actors{
		customerID:    customerID,
		customerToken: s.jwt.GenerateToken(t, customerID, "customer"),
		otherToken:    s.jwt.GenerateToken(t, otherID, "customer"),
		adminToken:    s.jwt.GenerateToken(t, adminID, "admin"),
		vehicleID:     dbtest.CreateTestVehicle(t, s.DB, dbtest.DefaultVehicle()),
	}
}

// futureBooking spans two billable days starting ten days from now.
func futureBooking(a actors) *builder.BookingBuilder {
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 10)
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.VehicleID = a.vehicleID
		b.CustomerID = a.customerID
		b.StartDate = start
		b.EndDate = start.AddDate(0, 0, 2)
		b.TotalCost = decimal.RequireFromString("100.00")
	})
}

func (s *BookingSuite) createBooking(a actors, b *builder.BookingBuilder) response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), a.customerToken)
	var created response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.Equal(t, fmt.Sprintf(bookingURL, created.ID), w.Header().Get("Location"))
	return created
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: create, pay by card, download receipt, complete", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a)

		created := s.createBooking(a, b)

		want := response.BookingResponse{
			VehicleID:     a.vehicleID.String(),
			VehicleBrand:  "Toyota",
			VehicleModel:  "Corolla",
			VehicleType:   "CAR",
			CustomerID:    a.customerID.String(),
			CustomerName:  "Jane Driver",
			CustomerEmail: "jane@example.com",
			StartDate:     b.StartDate.Format(time.DateOnly),
			EndDate:       b.EndDate.Format(time.DateOnly),
			TotalCost:     "100.00",
			Status:        "PENDING",
			PaymentMethod: "CARD",
			Notes:         "child seat please",
		}
		if diff := cmp.Diff(want, created, cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt")); diff != "" {
			t.Errorf("created booking mismatch (-want +got):\n%s", diff)
		}
		require.False(t, dbtest.VehicleAvailable(t, s.DB, a.vehicleID), "booking locks the vehicle")

		bookingID := uuid.MustParse(created.ID)
		b.ID = bookingID
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, bookingID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(receiptURL, created.ID), nil, a.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "receipt is only available for confirmed or completed bookings")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentURL, b.BuildCardPaymentDTO(), a.customerToken)
		var paid map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "success", paid["status"])
		require.Equal(t, "Payment of $100.00 processed successfully via Card (**** **** **** 1111)", paid["message"])

		var fetched response.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, a.customerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "CONFIRMED", fetched.Status)
		require.Equal(t, 2, dbtest.CountNotificationJobs(t, s.DB, bookingID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(receiptURL, created.ID), nil, a.customerToken)
		httptest.AssertPDFResponse(t, w)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, created.ID, "COMPLETED"), nil, a.adminToken)
		var completed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)
		require.Equal(t, "COMPLETED", completed.Status)
		require.True(t, dbtest.VehicleAvailable(t, s.DB, a.vehicleID), "completion releases the vehicle")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentURL, b.BuildCardPaymentDTO(), a.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "booking not payable")
	})

	s.Run("Normal case: cash payment confirms the booking", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a)
		b.ID = uuid.MustParse(s.createBooking(a, b).ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentURL, b.BuildCashPaymentDTO(), a.customerToken)
		var paid map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "Cash payment of $100.00 received successfully. Please collect receipt at counter.", paid["message"])

		var fetched response.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, b.ID), nil, a.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "CONFIRMED", fetched.Status)
		require.Equal(t, "CASH", fetched.PaymentMethod)
	})

	s.Run("Normal case: cancelling releases the vehicle", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a)
		created := s.createBooking(a, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, created.ID), nil, a.customerToken)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)
		require.True(t, dbtest.VehicleAvailable(t, s.DB, a.vehicleID))
	})
}

func (s *BookingSuite) TestCreateBooking_Errors() {
	s.Run("Error case: vehicle already booked", func() {
		t := s.T()
		a := s.seed()
		s.createBooking(a, futureBooking(a))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureBooking(a).BuildCreateRequestDTO(), a.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "vehicle not available")
	})

	s.Run("Error case: unknown vehicle", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a).With(func(b *builder.BookingBuilder) { b.VehicleID = uuid.New() })

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), a.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "vehicle not found")
	})

	s.Run("Error case: start date in the past", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a).With(func(b *builder.BookingBuilder) {
			b.StartDate = time.Now().UTC().AddDate(0, 0, -3)
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), a.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "start date cannot be in the past")
		require.True(t, dbtest.VehicleAvailable(t, s.DB, a.vehicleID))
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		a := s.seed()
		token := s.jwt.CreateExpiredToken(t, a.customerID, "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, futureBooking(a).BuildCreateRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *BookingSuite) TestAccessControl() {
	s.Run("Error case: other customers cannot read, pay or cancel", func() {
		t := s.T()
		a := s.seed()
		b := futureBooking(a)
		b.ID = uuid.MustParse(s.createBooking(a, b).ID)
		id := b.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, a.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, paymentURL, b.BuildCardPaymentDTO(), a.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, id), nil, a.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})

	s.Run("Normal case: admin lists by status, customer lists own", func() {
		t := s.T()
		a := s.seed()
		created := s.createBooking(a, futureBooking(a))

		var all []response.BookingResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=PENDING", nil, a.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		require.Len(t, all, 1)
		require.Equal(t, created.ID, all[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, a.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		var mine []response.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/my-bookings", nil, a.customerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)

		var others []response.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/my-bookings", nil, a.otherToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &others)
		require.Empty(t, others)
	})
}
