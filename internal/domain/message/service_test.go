package message

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace/internal/domain/booking"
	"marketplace/internal/pkg/apperr"
)

type fakeBookings map[int64]*booking.Booking

func (f fakeBookings) GetByID(_ context.Context, id int64) (*booking.Booking, error) {
	if b, ok := f[id]; ok {
		return b, nil
	}
	return nil, booking.ErrBookingNotFound
}

type mockPusher struct{ mock.Mock }

func (m *mockPusher) PushToUser(userID int64, v any) int {
	return m.Called(userID, v).Int(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, userID int64, message string) {
	m.Called(ctx, userID, message)
}

func newTestService(t *testing.T, pusher Pusher, notifs Notifier) (*Service, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:message_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&Message{}))

	bookings := fakeBookings{1: {ID: 1, ClientID: 20, ProviderID: 10}}
	return NewService(NewRepository(db), bookings, pusher, notifs, zerolog.Nop()), db
}

func TestCreate_LiveDelivery(t *testing.T) {
	pusher := &mockPusher{}
	pusher.On("PushToUser", int64(10), mock.AnythingOfType("*message.WSEvent")).Return(1).Once()
	notifs := &mockNotifier{}

	svc, _ := newTestService(t, pusher, notifs)
	msg, err := svc.Create(context.Background(), 1, "  Is 9am ok?  ", 20)
	require.NoError(t, err)
	assert.Equal(t, "Is 9am ok?", msg.Content)

	pusher.AssertExpectations(t)
	notifs.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_OfflineRecipientGetsNotification(t *testing.T) {
	pusher := &mockPusher{}
	pusher.On("PushToUser", int64(20), mock.Anything).Return(0)
	notifs := &mockNotifier{}
	notifs.On("Notify", mock.Anything, int64(20), "You have a new message about booking #1").Once()

	svc, _ := newTestService(t, pusher, notifs)
	_, err := svc.Create(context.Background(), 1, "See you tomorrow", 10)
	require.NoError(t, err)

	notifs.AssertExpectations(t)
}

func TestCreate_Rejections(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "   ", 20)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, 1, strings.Repeat("x", maxContentLength+1), 20)
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = svc.Create(ctx, 2, "hi", 20)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, 1, "hi", 99)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestListByBooking_OldestFirst(t *testing.T) {
	svc, db := newTestService(t, nil, nil)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, sender := range []int64{20, 10, 20} {
		require.NoError(t, db.Create(&Message{
			BookingID: 1,
			SenderID:  sender,
			Content:   fmt.Sprintf("m%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	msgs, err := svc.ListByBooking(ctx, 1, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "m0", msgs[0].Content)
	assert.Equal(t, "m2", msgs[2].Content)

	_, err = svc.ListByBooking(ctx, 1, 55, 0, 0)
	assert.ErrorIs(t, err, ErrNotParticipant)
}
