package services

import (
	"context"
	"time"

	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const reportLimit = 100

// DashboardService computes read-only rollups for owner and staff screens.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type OwnerStats struct {
	TotalIncome     float64 `json:"totalIncome"`
	ActiveOrders    int64   `json:"activeOrders"`
	TotalCustomers  int64   `json:"totalCustomers"`
	CompletedOrders int64   `json:"completedOrders"`
}

type StaffCounts struct {
	OrderBaru   int64 `json:"orderBaru"`
	DalamProses int64 `json:"dalamProses"`
	SiapDiambil int64 `json:"siapDiambil"`
}

type ReportRow struct {
	ID             uint    `json:"id"`
	CustomerName   string  `json:"customer_name"`
	ServiceName    string  `json:"service_name"`
	EstimatedTotal float64 `json:"estimated_total"`
	CurrentStatus  string  `json:"current_status"`
	Date           string  `json:"date"`
}

// OwnerStats runs the four counters concurrently. A failing counter is
// logged and reported as zero; the others are unaffected.
func (s *DashboardService) OwnerStats(ctx context.Context) OwnerStats {
	var stats OwnerStats
	db := s.DB.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		row := db.Model(&models.Booking{}).
			Where("current_status IN ?", models.CompletedStatuses).
			Select("COALESCE(SUM(estimated_total), 0)").Row()
		if err := row.Scan(&stats.TotalIncome); err != nil {
			utils.ErrorLogger.WithField("counter", "totalIncome").Error(err)
			stats.TotalIncome = 0
		}
		return nil
	})
	g.Go(func() error {
		stats.ActiveOrders = s.count(db.Model(&models.Booking{}).
			Where("current_status NOT IN ?", models.InactiveStatuses), "activeOrders")
		return nil
	})
	g.Go(func() error {
		stats.TotalCustomers = s.count(db.Model(&models.User{}).
			Where("role = ?", models.RoleCustomer), "totalCustomers")
		return nil
	})
	g.Go(func() error {
		stats.CompletedOrders = s.count(db.Model(&models.Booking{}).
			Where("current_status IN ?", models.CompletedStatuses), "completedOrders")
		return nil
	})
	_ = g.Wait()

	return stats
}

func (s *DashboardService) count(q *gorm.DB, name string) int64 {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		utils.ErrorLogger.WithField("counter", name).Error(err)
		return 0
	}
	return n
}

// StaffCounts fails as a whole if any counter fails.
func (s *DashboardService) StaffCounts(ctx context.Context) (StaffCounts, error) {
	var counts StaffCounts
	g, gctx := errgroup.WithContext(ctx)
	db := s.DB.WithContext(gctx)

	g.Go(func() error {
		return db.Model(&models.Booking{}).
			Where("current_status = ?", models.StatusReceived).Count(&counts.OrderBaru).Error
	})
	g.Go(func() error {
		return db.Model(&models.Booking{}).
			Where("current_status IN ?", models.InProgressStatuses).Count(&counts.DalamProses).Error
	})
	g.Go(func() error {
		return db.Model(&models.Booking{}).
			Where("current_status = ?", models.StatusReady).Count(&counts.SiapDiambil).Error
	})

	if err := g.Wait(); err != nil {
		utils.ErrorLogger.Errorf("order counts: %v", err)
		return StaffCounts{}, internal("Error getting counts", err)
	}
	return counts, nil
}

type reportScan struct {
	ID             uint
	CustomerName   *string
	ServiceName    *string
	EstimatedTotal float64
	CurrentStatus  string
	CreatedAt      time.Time
}

// Reports lists the latest bookings with customer and service names.
func (s *DashboardService) Reports(ctx context.Context) ([]ReportRow, error) {
	var rows []reportScan
	err := s.DB.WithContext(ctx).
		Table("bookings AS b").
		Select("b.id, u.name AS customer_name, s.name AS service_name, b.estimated_total, b.current_status, b.created_at").
		Joins("LEFT JOIN users u ON b.user_id = u.id").
		Joins("LEFT JOIN services s ON b.service_id = s.id").
		Order("b.created_at DESC, b.id DESC").
		Limit(reportLimit).
		Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Errorf("reports: %v", err)
		return nil, internal("Error fetching reports", err)
	}

	out := make([]ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportRow{
			ID:             r.ID,
			CustomerName:   deref(r.CustomerName),
			ServiceName:    deref(r.ServiceName),
			EstimatedTotal: r.EstimatedTotal,
			CurrentStatus:  r.CurrentStatus,
			Date:           utils.FormatDateTimeShort(r.CreatedAt),
		})
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
