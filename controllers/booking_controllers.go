package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingRequest struct {
	UserID         flexNumber `json:"user_id"`
	ServiceID      flexNumber `json:"service_id"`
	BookingDate    string     `json:"booking_date"`
	TimeSlot       string     `json:"time_slot"`
	DeliveryType   string     `json:"delivery_type"`
	EstimatedTotal flexNumber `json:"estimated_total"`
	Notes          string     `json:"notes"`
	CustomerName   string     `json:"customer_name"`
	CustomerPhone  string     `json:"customer_phone"`
}

type updateStatusRequest struct {
	NewStatus string  `json:"new_status"`
	UpdatedBy string  `json:"updated_by"`
	Notes     *string `json:"notes"`
}

// CreateBooking accepts either a known user_id or, for walk-in bookings made
// by staff, a customer phone that is resolved to an account.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Data booking tidak lengkap")
		return
	}
	userID := req.UserID.ID()
	if userID == 0 && req.CustomerPhone == "" {
		if uid, present, ok := requesterID(c); present && ok {
			userID = uid
		}
	}

	id, err := bc.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		UserID:         userID,
		ServiceID:      req.ServiceID.ID(),
		BookingDate:    req.BookingDate,
		TimeSlot:       req.TimeSlot,
		DeliveryType:   req.DeliveryType,
		EstimatedTotal: req.EstimatedTotal.Float(),
		Notes:          req.Notes,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking berhasil dibuat", gin.H{"bookingId": id})
}

// GetBookings lists the requester's bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, present, ok := requesterID(c)
	if !present {
		utils.RespondMessage(c, http.StatusBadRequest, "user_id diperlukan sebagai query parameter")
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errInvalidID)
		return
	}

	list, err := bc.Bookings.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daftar booking", list)
}

func (bc *BookingController) GetBookingStatus(c *gin.Context) {
	bookingID, userID, ok := bc.ownedTarget(c)
	if !ok {
		return
	}

	detail, err := bc.Bookings.StatusDetail(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Status booking", detail)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	bookingID, userID, ok := bc.ownedTarget(c)
	if !ok {
		return
	}

	if err := bc.Bookings.Delete(c.Request.Context(), bookingID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking berhasil dihapus", gin.H{"bookingId": bookingID})
}

// UpdateStatus is the customer-side variant; notes are not accepted here.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	bc.updateStatus(c, false)
}

// StaffUpdateStatus is the staff variant and records optional notes.
func (bc *BookingController) StaffUpdateStatus(c *gin.Context) {
	bc.updateStatus(c, true)
}

func (bc *BookingController) updateStatus(c *gin.Context, withNotes bool) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Status baru dan updated_by diperlukan")
		return
	}
	if req.NewStatus == "" || req.UpdatedBy == "" {
		utils.RespondMessage(c, http.StatusBadRequest, "Status baru dan updated_by diperlukan")
		return
	}
	bookingID, ok := parseID(c.Param("id"))
	if !ok {
		utils.RespondMessage(c, http.StatusBadRequest, "Invalid id")
		return
	}

	in := services.UpdateStatusInput{
		BookingID: bookingID,
		NewStatus: req.NewStatus,
		UpdatedBy: req.UpdatedBy,
	}
	if withNotes {
		in.Notes = req.Notes
	}
	if err := bc.Bookings.UpdateStatus(c.Request.Context(), in); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Status berhasil diupdate", gin.H{
		"bookingId":  bookingID,
		"new_status": req.NewStatus,
	})
}

// GetStaffBookings is the staff board listing of every booking.
func (bc *BookingController) GetStaffBookings(c *gin.Context) {
	list, err := bc.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Semua booking", list)
}

// ownedTarget parses the booking id and requester. It writes the 400 response
// itself and reports false when either is missing or malformed.
func (bc *BookingController) ownedTarget(c *gin.Context) (bookingID, userID uint, ok bool) {
	userID, present, valid := requesterID(c)
	if !present {
		utils.RespondMessage(c, http.StatusBadRequest, "user_id diperlukan")
		return 0, 0, false
	}
	bookingID, idOK := parseID(c.Param("id"))
	if !valid || !idOK {
		utils.RespondError(c, http.StatusBadRequest, errInvalidID)
		return 0, 0, false
	}
	return bookingID, userID, true
}
