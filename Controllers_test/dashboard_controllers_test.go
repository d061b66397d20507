package Controllers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yeremiapane/laundry-app/models"
	"gorm.io/gorm"
)

func seedStatuses(t *testing.T, r http.Handler, db *gorm.DB) {
	t.Helper()
	svc := seedService(t, db, "Cuci Kering", 7000)
	ani := seedUser(t, db, "ani@example.com", "rahasia", models.RoleCustomer)
	seedUser(t, db, "0811", "123456", models.RoleStaff)

	totals := map[string]float64{
		models.StatusDone:      40000,
		models.StatusReady:     30000,
		models.StatusCancelled: 50000,
		models.StatusWashed:    20000,
	}
	for status, total := range totals {
		payload := bookingPayload(ani.ID, svc.ID)
		payload["estimated_total"] = total
		id := createBooking(t, r, payload)
		w, _ := doJSON(t, r, http.MethodPost, "/staff/bookings/"+itoa(id)+"/update-status", map[string]string{
			"new_status": status, "updated_by": "Rina",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	// One untouched booking stays Diterima.
	createBooking(t, r, bookingPayload(ani.ID, svc.ID))
}

func TestOwnerStats(t *testing.T) {
	r, db := setupRouterForTest(t, nil)
	seedStatuses(t, r, db)

	w, env := doJSON(t, r, http.MethodGet, "/owner/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalIncome     float64 `json:"totalIncome"`
		ActiveOrders    int64   `json:"activeOrders"`
		TotalCustomers  int64   `json:"totalCustomers"`
		CompletedOrders int64   `json:"completedOrders"`
	}
	decodeData(t, env, &stats)
	assert.InDelta(t, 70000.0, stats.TotalIncome, 0.001)
	assert.Equal(t, int64(2), stats.CompletedOrders)
	// Dicuci and Diterima are active; Dibatalkan is in neither bucket.
	assert.Equal(t, int64(2), stats.ActiveOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
}

func TestOwnerReports(t *testing.T) {
	r, db := setupRouterForTest(t, nil)
	seedStatuses(t, r, db)

	w, env := doJSON(t, r, http.MethodGet, "/owner/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	decodeData(t, env, &rows)
	require.Len(t, rows, 5)
	assert.Equal(t, "User ani@example.com", rows[0]["customer_name"])
	assert.Equal(t, models.StatusReceived, rows[0]["current_status"])
}

func TestExportReports(t *testing.T) {
	r, db := setupRouterForTest(t, nil)
	seedStatuses(t, r, db)

	req := httptest.NewRequest(http.MethodGet, "/owner/reports/export?format=xlsx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment; filename=\"laporan-"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Laporan")
	require.NoError(t, err)
	assert.Len(t, rows, 6)

	req = httptest.NewRequest(http.MethodGet, "/owner/reports/export?format=pdf", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w2, _ := doJSON(t, r, http.MethodGet, "/owner/reports/export?format=csv", nil)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}
