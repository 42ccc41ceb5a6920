package admin

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/booking"
	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/pkg/apperr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&auth.User{},
		&catalog.Category{},
		&catalog.Listing{},
		&subscription.Subscription{},
		&booking.Model{},
	))
	return db
}

func newTestService(t *testing.T) *Service {
	db := setupTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, db.Create(&[]auth.User{
		{ID: 1, Email: "pro@example.com", Role: auth.RoleProvider, Name: "Pro Plumbing"},
		{ID: 2, Email: "alice@example.com", Role: auth.RoleClient, Name: "Alice"},
		{ID: 3, Email: "newbie@example.com", Role: auth.RoleProvider, Name: "Newbie"},
		{ID: 4, Email: "ops@example.com", Role: auth.RoleAdmin, Name: "Ops"},
	}).Error)
	require.NoError(t, db.Create(&[]catalog.Category{{ID: 1, Name: "Plumbing"}, {ID: 2, Name: "Cleaning"}}).Error)
	require.NoError(t, db.Create(&[]catalog.Listing{
		{ID: 10, ProviderID: 1, CategoryID: 1, Title: "Kitchen taps", Price: 40},
		{ID: 11, ProviderID: 1, CategoryID: 2, Title: "Deep clean", Price: 90},
	}).Error)
	require.NoError(t, db.Create(&[]subscription.Subscription{
		{UserID: 1, Plan: subscription.PlanPremium, Status: subscription.StatusActive, StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 2, 0), Amount: 99},
		// never swept: stored ACTIVE but past its end date
		{UserID: 3, Plan: subscription.PlanBasic, Status: subscription.StatusActive, StartDate: now.AddDate(0, -4, 0), EndDate: now.AddDate(0, 0, -1), Amount: 49},
	}).Error)
	require.NoError(t, db.Create(&[]booking.Model{
		{ClientID: 2, ProviderID: 1, ServiceID: 10, Date: now.AddDate(0, 0, 3), Status: string(booking.StatusPending)},
		{ClientID: 2, ProviderID: 1, ServiceID: 11, Date: now.AddDate(0, 0, -3), Status: string(booking.StatusCompleted)},
	}).Error)

	catalogSvc := catalog.NewService(catalog.NewRepository(db), nil, zerolog.Nop())
	return NewService(NewAdminRepository(db), catalogSvc, booking.NewBookingRepository(db), zerolog.Nop())
}

func byID(users []UserSummary) map[int64]UserSummary {
	out := make(map[int64]UserSummary, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out
}

func TestListUsers_Counts(t *testing.T) {
	svc := newTestService(t)

	users, total, err := svc.ListUsers(context.Background(), "", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, users, 4)

	m := byID(users)
	assert.Equal(t, int64(2), m[1].ServiceCount)
	assert.Equal(t, int64(2), m[1].BookingCount)
	assert.Equal(t, int64(0), m[2].ServiceCount)
	assert.Equal(t, int64(2), m[2].BookingCount)
	assert.Equal(t, int64(0), m[4].BookingCount)
	assert.Equal(t, "alice@example.com", m[2].Email)
}

func TestListUsers_Filters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	users, total, err := svc.ListUsers(ctx, "provider", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, u := range users {
		assert.Equal(t, auth.RoleProvider, u.Role)
	}

	users, total, err = svc.ListUsers(ctx, "", "ALICE", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, int64(2), users[0].ID)

	// total counts every match, the page holds one
	users, total, err = svc.ListUsers(ctx, "", "", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, users, 1)

	_, _, err = svc.ListUsers(ctx, "superuser", "", 1, 20)
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestListProviders_AttachesSubscription(t *testing.T) {
	svc := newTestService(t)

	providers, total, err := svc.ListProviders(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, providers, 2)

	got := map[int64]ProviderSummary{}
	for _, p := range providers {
		got[p.ID] = p
	}
	require.NotNil(t, got[1].Subscription)
	assert.Equal(t, subscription.PlanPremium, got[1].Subscription.Plan)
	assert.True(t, got[1].Entitled)
	assert.Equal(t, int64(2), got[1].ServiceCount)

	require.NotNil(t, got[3].Subscription)
	assert.False(t, got[3].Entitled)
}

func TestListSubscriptions_EffectiveStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, total, err := svc.ListSubscriptions(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	active, total, err := svc.ListSubscriptions(ctx, "ACTIVE", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].UserID)
	assert.Equal(t, "Pro Plumbing", active[0].UserName)
	assert.True(t, active[0].Entitled)

	expired, total, err := svc.ListSubscriptions(ctx, "expired", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, expired, 1)
	assert.Equal(t, "newbie@example.com", expired[0].UserEmail)
	assert.Equal(t, subscription.StatusActive, expired[0].Status)
	assert.False(t, expired[0].Entitled)

	_, _, err = svc.ListSubscriptions(ctx, "PAUSED", 1, 20)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListServices(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	services, total, err := svc.ListServices(ctx, 0, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, services, 2)

	services, total, err = svc.ListServices(ctx, 2, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, services, 1)
	assert.Equal(t, "Deep clean", services[0].Title)

	_, total, err = svc.ListServices(ctx, 0, "taps", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListBookings_StatusFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed, err := svc.ListBookings(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, booking.StatusCompleted, completed[0].Status)
	assert.Equal(t, "Deep clean", completed[0].ServiceTitle)
	assert.Equal(t, "Alice", completed[0].ClientName)

	_, err = svc.ListBookings(ctx, "LOST")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantLimit, wantSkip int
	}{
		{1, 20, 20, 0},
		{3, 10, 10, 20},
		{0, 0, defaultLimit, 0},
		{-2, 500, defaultLimit, 0},
	}
	for _, tt := range tests {
		limit, offset := Page(tt.page, tt.limit)
		assert.Equal(t, tt.wantLimit, limit, "page=%d limit=%d", tt.page, tt.limit)
		assert.Equal(t, tt.wantSkip, offset, "page=%d limit=%d", tt.page, tt.limit)
	}
}
