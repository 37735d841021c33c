package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/user"
	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errs.New("no authenticated user on request")
	errNotOwner        = errs.New("booking belongs to another customer")
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a vehicle for the authenticated customer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.CreateBooking(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+b.ID().String())
	h.respondWithView(c, http.StatusCreated, b)
}

// @Summary Get booking
// @Description Customers can only read their own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, ok := h.loadOwnedView(c)
	if !ok {
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/bookings/my-bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondWithList(c, views)
}

// @Summary List bookings
// @Description Admin only. At most one filter applies: status, then vehicleId, then from/to.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, CONFIRMED, COMPLETED or CANCELLED"
// @Param vehicleId query string false "Vehicle ID"
// @Param from query string false "Earliest start date (YYYY-MM-DD)"
// @Param to query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	var (
		views []*queries.BookingView
		err   error
	)
	switch {
	case query.Status != "":
		status, parseErr := booking.ParseStatus(query.Status)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid status", nil)
			return
		}
		views, err = h.q.ListByStatus(ctx, status)
	case query.VehicleID != "":
		vehicleID, parseErr := uuid.Parse(query.VehicleID)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid vehicleId", nil)
			return
		}
		views, err = h.q.ListByVehicle(ctx, vehicleID)
	case query.HasDateRange():
		from, to, complete := query.DateRange()
		if !complete {
			httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrInvalidDateRange, "Both from and to are required", nil)
			return
		}
		views, err = h.q.ListByStartDateRange(ctx, from, to)
	default:
		views, err = h.q.ListAll(ctx)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondWithList(c, views)
}

// @Summary Update booking status
// @Description Admin only. Completing or cancelling releases the vehicle.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param status query string true "PENDING, CONFIRMED, COMPLETED or CANCELLED"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var query reqdto.UpdateStatusQuery
	if err = c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}
	status, err := booking.ParseStatus(query.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	b, err := h.cmds.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, b)
}

// @Summary Cancel booking
// @Description Owners and admins can cancel; the vehicle becomes available again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	view, ok := h.loadOwnedView(c)
	if !ok {
		return
	}
	b, err := h.cmds.CancelBooking(c.Request.Context(), view.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, b)
}

// @Summary Download receipt
// @Description PDF receipt for a confirmed or completed booking
// @Tags bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/receipt [get]
func (h *BookingHandler) Receipt(c *gin.Context) {
	view, ok := h.loadOwnedView(c)
	if !ok {
		return
	}
	receipt, err := h.q.GetReceipt(c.Request.Context(), view.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(receipt.Filename))
	c.Data(http.StatusOK, "application/pdf", receipt.Content)
}

// loadOwnedView aborts the request unless the caller may see the booking.
func (h *BookingHandler) loadOwnedView(c *gin.Context) (*queries.BookingView, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return nil, false
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return nil, false
	}
	if !authorizeBooking(c, view.CustomerID) {
		return nil, false
	}
	return view, true
}

// authorizeBooking lets admins through and restricts customers to their own bookings.
func authorizeBooking(c *gin.Context, ownerID uuid.UUID) bool {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return false
	}
	if role, _ := middleware.GetUserRole(c); role == user.RoleAdmin {
		return true
	}
	if userID != ownerID {
		httperr.AbortWithError(c, http.StatusForbidden, errNotOwner, "Forbidden", nil)
		return false
	}
	return true
}

// respondWithView prefers the joined view; the aggregate alone is enough when
// the read fails after a successful write.
func (h *BookingHandler) respondWithView(c *gin.Context, status int, b *booking.Booking) {
	view, err := h.q.GetByID(c.Request.Context(), b.ID())
	if err != nil {
		slog.Warn("failed to load booking view after write",
			"booking_id", b.ID().String(),
			"error", err.Error())
		c.JSON(status, resdto.FromBooking(b))
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(status, resdto.FromBooking(b))
		return
	}
	c.JSON(status, res)
}

func respondWithList(c *gin.Context, views []*queries.BookingView) {
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
