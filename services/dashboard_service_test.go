package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/laundry-app/models"
	"gorm.io/gorm"
)

func seedBooking(t *testing.T, db *gorm.DB, userID, serviceID uint, status string, total float64) models.Booking {
	t.Helper()
	b := models.Booking{
		UserID:         userID,
		ServiceID:      serviceID,
		BookingDate:    "2026-10-20",
		TimeSlot:       "09:00-11:00",
		DeliveryType:   "pickup",
		EstimatedTotal: total,
		CurrentStatus:  status,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func seedDashboard(t *testing.T, db *gorm.DB) {
	t.Helper()
	svc := seedService(t, db, "Cuci Kering", 7000)
	customer := seedUser(t, db, "ani@example.com", models.RoleCustomer)
	seedUser(t, db, "0811", models.RoleStaff)

	seedBooking(t, db, customer.ID, svc.ID, models.StatusReceived, 10)
	seedBooking(t, db, customer.ID, svc.ID, models.StatusWashed, 20)
	seedBooking(t, db, customer.ID, svc.ID, models.StatusReady, 30)
	seedBooking(t, db, customer.ID, svc.ID, models.StatusDone, 40)
	seedBooking(t, db, customer.ID, svc.ID, models.StatusCancelled, 50)
	seedBooking(t, db, customer.ID, svc.ID, "Menunggu Kurir", 60)
}

func TestOwnerStatsBuckets(t *testing.T) {
	db := newTestDB(t)
	seedDashboard(t, db)

	stats := NewDashboardService(db).OwnerStats(context.Background())

	// Selesai and Siap Diambil count as income.
	assert.InDelta(t, 70.0, stats.TotalIncome, 0.001)
	assert.Equal(t, int64(2), stats.CompletedOrders)
	// Dibatalkan is neither active nor completed.
	assert.Equal(t, int64(3), stats.ActiveOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
}

func TestOwnerStatsEmpty(t *testing.T) {
	stats := NewDashboardService(newTestDB(t)).OwnerStats(context.Background())
	assert.Equal(t, OwnerStats{}, stats)
}

func TestOwnerStatsDegradesPerCounter(t *testing.T) {
	db := newTestDB(t)
	seedDashboard(t, db)
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	stats := NewDashboardService(db).OwnerStats(context.Background())
	assert.Zero(t, stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.CompletedOrders)
	assert.Equal(t, int64(3), stats.ActiveOrders)
}

func TestStaffCounts(t *testing.T) {
	db := newTestDB(t)
	seedDashboard(t, db)
	dash := NewDashboardService(db)

	counts, err := dash.StaffCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StaffCounts{OrderBaru: 1, DalamProses: 1, SiapDiambil: 1}, counts)

	require.NoError(t, db.Migrator().DropTable(&models.Booking{}))
	_, err = dash.StaffCounts(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestReportsNewestFirstWithNames(t *testing.T) {
	db := newTestDB(t)
	seedDashboard(t, db)

	rows, err := NewDashboardService(db).Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Menunggu Kurir", rows[0].CurrentStatus)
	assert.Equal(t, "User ani@example.com", rows[0].CustomerName)
	assert.Equal(t, "Cuci Kering", rows[0].ServiceName)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`, rows[0].Date)
}

func TestReportsKeepOrphanedBookings(t *testing.T) {
	db := newTestDB(t)
	seedDashboard(t, db)
	require.NoError(t, db.Exec("DELETE FROM users WHERE role = ?", models.RoleCustomer).Error)

	rows, err := NewDashboardService(db).Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "", rows[0].CustomerName)
}

func TestReportsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := seedService(t, db, "Cuci Kering", 7000)
	customer := seedUser(t, db, "ani@example.com", models.RoleCustomer)

	batch := make([]models.Booking, 0, reportLimit+5)
	for i := 0; i < reportLimit+5; i++ {
		batch = append(batch, models.Booking{
			UserID: customer.ID, ServiceID: svc.ID, BookingDate: "2026-10-20",
			TimeSlot: "09:00", DeliveryType: "pickup", EstimatedTotal: 1000,
			CurrentStatus: models.StatusReceived,
		})
	}
	require.NoError(t, db.CreateInBatches(&batch, 50).Error)

	rows, err := NewDashboardService(db).Reports(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, reportLimit)
}
