package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/laundry-app/board"
	"github.com/yeremiapane/laundry-app/metrics"
	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/utils"
	"gorm.io/gorm"
)

const (
	msgBookingIncomplete = "Data booking tidak lengkap"
	msgBookingNotFound   = "Booking tidak ditemukan atau bukan milik Anda"
	msgStatusRequired    = "Status baru dan updated_by diperlukan"
)

// Publisher receives booking events after a successful write.
type Publisher interface {
	Publish(event string, data interface{})
}

type BookingOptions struct {
	PlaceholderPassword string
	// StrictStatus rejects labels outside models.KnownStatuses.
	StrictStatus bool
	// Transactional wraps booking insert and first history row in one transaction.
	Transactional bool
}

// BookingService owns the booking lifecycle: every status write is mirrored
// into status_history. Multi-step writes run as separate statements, in order,
// with no rollback unless Transactional is set.
type BookingService struct {
	DB    *gorm.DB
	Users *UserService
	Board Publisher
	opts  BookingOptions
}

func NewBookingService(db *gorm.DB, users *UserService, pub Publisher, opts BookingOptions) *BookingService {
	return &BookingService{DB: db, Users: users, Board: pub, opts: opts}
}

type CreateBookingInput struct {
	UserID         uint
	ServiceID      uint
	BookingDate    string
	TimeSlot       string
	DeliveryType   string
	EstimatedTotal float64
	Notes          string
	CustomerName   string
	CustomerPhone  string
}

type UpdateStatusInput struct {
	BookingID uint
	NewStatus string
	UpdatedBy string
	Notes     *string
}

type BookingView struct {
	ID             uint    `json:"id"`
	ServiceID      uint    `json:"service_id"`
	BookingDate    string  `json:"booking_date"`
	TimeSlot       string  `json:"time_slot"`
	DeliveryType   string  `json:"delivery_type"`
	EstimatedTotal float64 `json:"estimated_total"`
	CurrentStatus  string  `json:"current_status"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
	ServiceName    string  `json:"service_name"`
}

type StaffBookingView struct {
	BookingView
	UserID        uint   `json:"user_id"`
	CustomerEmail string `json:"customer_email"`
}

type HistoryView struct {
	ID        uint    `json:"id"`
	BookingID uint    `json:"booking_id"`
	Status    string  `json:"status"`
	UpdatedBy string  `json:"updated_by"`
	Notes     *string `json:"notes"`
	UpdatedAt string  `json:"updated_at"`
}

type StatusDetail struct {
	CurrentStatus string        `json:"current_status"`
	History       []HistoryView `json:"history"`
}

type bookingRow struct {
	ID             uint
	UserID         uint
	ServiceID      uint
	BookingDate    string
	TimeSlot       string
	DeliveryType   string
	EstimatedTotal float64
	CurrentStatus  string
	Notes          string
	CreatedAt      time.Time
	ServiceName    string
	CustomerEmail  string
}

func (r bookingRow) view() BookingView {
	return BookingView{
		ID:             r.ID,
		ServiceID:      r.ServiceID,
		BookingDate:    r.BookingDate,
		TimeSlot:       r.TimeSlot,
		DeliveryType:   r.DeliveryType,
		EstimatedTotal: r.EstimatedTotal,
		CurrentStatus:  r.CurrentStatus,
		Notes:          r.Notes,
		CreatedAt:      utils.FormatDateTime(r.CreatedAt),
		ServiceName:    r.ServiceName,
	}
}

// Create resolves the customer (provisioning one for an unknown phone),
// validates the booking, inserts it as Diterima and appends the first history
// row. A failed history append is logged and does not fail the call.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (uint, error) {
	userID := in.UserID
	if userID == 0 && strings.TrimSpace(in.CustomerPhone) != "" {
		resolved, err := s.Users.ResolveCustomer(ctx, in.CustomerPhone, in.CustomerName, s.opts.PlaceholderPassword)
		if err != nil {
			return 0, err
		}
		userID = resolved
	}

	if userID == 0 || in.ServiceID == 0 ||
		strings.TrimSpace(in.BookingDate) == "" ||
		strings.TrimSpace(in.TimeSlot) == "" ||
		strings.TrimSpace(in.DeliveryType) == "" ||
		in.EstimatedTotal <= 0 {
		return 0, validationError(msgBookingIncomplete)
	}

	booking := models.Booking{
		UserID:         userID,
		ServiceID:      in.ServiceID,
		BookingDate:    strings.TrimSpace(in.BookingDate),
		TimeSlot:       strings.TrimSpace(in.TimeSlot),
		DeliveryType:   strings.TrimSpace(in.DeliveryType),
		EstimatedTotal: in.EstimatedTotal,
		Notes:          in.Notes,
		CurrentStatus:  models.StatusReceived,
	}

	if s.opts.Transactional {
		if err := s.createTx(ctx, &booking); err != nil {
			return 0, err
		}
	} else {
		if err := s.DB.WithContext(ctx).Create(&booking).Error; err != nil {
			utils.ErrorLogger.WithField("user_id", userID).Errorf("create booking: %v", err)
			return 0, internal("Error saat membuat booking", err)
		}
		if err := appendHistory(s.DB.WithContext(ctx), booking.ID, models.StatusReceived, models.SystemActor, nil); err != nil {
			metrics.HistoryAppendFailures.WithLabelValues("create").Inc()
			utils.ErrorLogger.WithField("booking_id", booking.ID).
				Errorf("Error inserting initial status history: %v", err)
		}
	}

	metrics.BookingsCreated.Inc()
	s.publish(board.EventBookingCreated, map[string]interface{}{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
		"status":     booking.CurrentStatus,
	})
	utils.InfoLogger.WithFields(logrus.Fields{"booking_id": booking.ID, "user_id": userID}).Info("booking created")
	return booking.ID, nil
}

func (s *BookingService) createTx(ctx context.Context, booking *models.Booking) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		return appendHistory(tx, booking.ID, models.StatusReceived, models.SystemActor, nil)
	})
	if err != nil {
		utils.ErrorLogger.WithField("user_id", booking.UserID).Errorf("create booking (tx): %v", err)
		booking.ID = 0
		return internal("Error saat membuat booking", err)
	}
	return nil
}

// ListForUser returns the user's bookings with service names, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]BookingView, error) {
	var rows []bookingRow
	err := s.DB.WithContext(ctx).
		Table("bookings AS b").
		Select("b.id, b.user_id, b.service_id, b.booking_date, b.time_slot, b.delivery_type, " +
			"b.estimated_total, b.current_status, b.notes, b.created_at, s.name AS service_name").
		Joins("JOIN services s ON b.service_id = s.id").
		Where("b.user_id = ?", userID).
		Order("b.created_at DESC, b.id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.WithField("user_id", userID).Errorf("list bookings: %v", err)
		return nil, internal("Error saat mengambil booking", err)
	}

	views := make([]BookingView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views, nil
}

// ListAll is the staff view over every booking.
func (s *BookingService) ListAll(ctx context.Context) ([]StaffBookingView, error) {
	var rows []bookingRow
	err := s.DB.WithContext(ctx).
		Table("bookings AS b").
		Select("b.id, b.user_id, b.service_id, b.booking_date, b.time_slot, b.delivery_type, " +
			"b.estimated_total, b.current_status, b.notes, b.created_at, s.name AS service_name, " +
			"u.email_or_phone AS customer_email").
		Joins("JOIN services s ON b.service_id = s.id").
		Joins("JOIN users u ON b.user_id = u.id").
		Order("b.created_at DESC, b.id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Errorf("list staff bookings: %v", err)
		return nil, internal("Error mengambil booking", err)
	}

	views := make([]StaffBookingView, 0, len(rows))
	for _, r := range rows {
		views = append(views, StaffBookingView{
			BookingView:   r.view(),
			UserID:        r.UserID,
			CustomerEmail: r.CustomerEmail,
		})
	}
	return views, nil
}

// StatusDetail returns the live status and full history of a booking owned by
// userID. A missing booking and someone else's booking look the same.
func (s *BookingService) StatusDetail(ctx context.Context, bookingID, userID uint) (StatusDetail, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).
		Select("id", "current_status").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusDetail{}, notFound(msgBookingNotFound)
		}
		utils.ErrorLogger.WithField("booking_id", bookingID).Errorf("status query: %v", err)
		return StatusDetail{}, internal("Error saat mengambil status", err)
	}

	history, err := s.History(ctx, bookingID)
	if err != nil {
		return StatusDetail{}, err
	}
	return StatusDetail{CurrentStatus: booking.CurrentStatus, History: history}, nil
}

// History lists status entries oldest first.
func (s *BookingService) History(ctx context.Context, bookingID uint) ([]HistoryView, error) {
	var entries []models.StatusHistory
	err := s.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("updated_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		utils.ErrorLogger.WithField("booking_id", bookingID).Errorf("history query: %v", err)
		return nil, internal("Error saat mengambil riwayat status", err)
	}

	views := make([]HistoryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, HistoryView{
			ID:        e.ID,
			BookingID: e.BookingID,
			Status:    e.Status,
			UpdatedBy: e.UpdatedBy,
			Notes:     e.Notes,
			UpdatedAt: utils.FormatDateTime(e.UpdatedAt),
		})
	}
	return views, nil
}

// UpdateStatus overwrites current_status, then appends the matching history
// row. If the append fails the overwrite stays in place and the caller gets
// an internal error.
func (s *BookingService) UpdateStatus(ctx context.Context, in UpdateStatusInput) error {
	status := strings.TrimSpace(in.NewStatus)
	actor := strings.TrimSpace(in.UpdatedBy)
	if status == "" || actor == "" {
		return validationError(msgStatusRequired)
	}
	if s.opts.StrictStatus && !models.IsKnownStatus(status) {
		return validationError("Status tidak dikenal: " + status)
	}
	if in.BookingID == 0 {
		return validationError("Invalid id")
	}

	db := s.DB.WithContext(ctx)
	res := db.Model(&models.Booking{}).Where("id = ?", in.BookingID).Update("current_status", status)
	if res.Error != nil {
		utils.ErrorLogger.WithField("booking_id", in.BookingID).Errorf("update status: %v", res.Error)
		return internal("Error saat update status", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("Booking tidak ditemukan")
	}

	metrics.StatusUpdates.WithLabelValues(statusLabel(status)).Inc()

	notes := in.Notes
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}
	if err := appendHistory(db, in.BookingID, status, actor, notes); err != nil {
		metrics.HistoryAppendFailures.WithLabelValues("update").Inc()
		utils.ErrorLogger.WithFields(logrus.Fields{"booking_id": in.BookingID, "status": status}).
			Errorf("insert status history: %v", err)
		return internal("Error saat insert riwayat", err)
	}

	s.publish(board.EventBookingStatusUpdated, map[string]interface{}{
		"booking_id": in.BookingID,
		"status":     status,
		"updated_by": actor,
	})
	return nil
}

// Delete removes the booking's history, then the booking itself, both scoped
// to bookings owned by userID. A history delete failure is logged only.
func (s *BookingService) Delete(ctx context.Context, bookingID, userID uint) error {
	db := s.DB.WithContext(ctx)

	owned := db.Model(&models.Booking{}).Select("id").Where("id = ? AND user_id = ?", bookingID, userID)
	if err := db.Where("booking_id = ? AND booking_id IN (?)", bookingID, owned).
		Delete(&models.StatusHistory{}).Error; err != nil {
		utils.ErrorLogger.WithField("booking_id", bookingID).Errorf("Error deleting status history: %v", err)
	}

	res := db.Where("id = ? AND user_id = ?", bookingID, userID).Delete(&models.Booking{})
	if res.Error != nil {
		utils.ErrorLogger.WithField("booking_id", bookingID).Errorf("Error deleting booking: %v", res.Error)
		return internal("Error saat menghapus booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(msgBookingNotFound)
	}

	s.publish(board.EventBookingDeleted, map[string]interface{}{"booking_id": bookingID})
	return nil
}

func (s *BookingService) publish(event string, data interface{}) {
	if s.Board != nil {
		s.Board.Publish(event, data)
	}
}

func appendHistory(db *gorm.DB, bookingID uint, status, actor string, notes *string) error {
	return db.Create(&models.StatusHistory{
		BookingID: bookingID,
		Status:    status,
		UpdatedBy: actor,
		Notes:     notes,
	}).Error
}

// statusLabel keeps metric label cardinality bounded.
func statusLabel(status string) string {
	if models.IsKnownStatus(status) {
		return status
	}
	return "other"
}
