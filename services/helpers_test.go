package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/laundry-app/config"
	"github.com/yeremiapane/laundry-app/database"
	"github.com/yeremiapane/laundry-app/models"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database. One connection keeps
// every query on the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default().Database
	cfg.Driver = "sqlite"
	cfg.Path = ":memory:"
	cfg.MaxOpenConns = 1
	cfg.ConnMaxLifetime = 0

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	svc := models.Service{Name: name, BasePrice: price}
	require.NoError(t, db.Create(&svc).Error)
	return svc
}

func seedUser(t *testing.T, db *gorm.DB, login, role string) models.User {
	t.Helper()
	hashed, err := hashPassword("secret123")
	require.NoError(t, err)
	user := models.User{Name: "User " + login, EmailOrPhone: login, Password: hashed, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

type recordedEvent struct {
	Event string
	Data  interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Event: event, Data: data})
}

func (p *fakePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event)
	}
	return out
}

func newBookingService(db *gorm.DB, opts BookingOptions) (*BookingService, *fakePublisher) {
	if opts.PlaceholderPassword == "" {
		opts.PlaceholderPassword = "temp123"
	}
	pub := &fakePublisher{}
	return NewBookingService(db, NewUserService(db, "123456"), pub, opts), pub
}

func validInput(userID, serviceID uint) CreateBookingInput {
	return CreateBookingInput{
		UserID:         userID,
		ServiceID:      serviceID,
		BookingDate:    "2026-10-20",
		TimeSlot:       "09:00-11:00",
		DeliveryType:   "pickup",
		EstimatedTotal: 25000,
		Notes:          "Pisahkan baju putih",
	}
}
