package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flexwork/infras/otel/mocks"
	bookingModel "flexwork/internal/domains/booking/model"
	notificationMocks "flexwork/internal/domains/notification/mocks"
	"flexwork/internal/domains/notification/model"
	"flexwork/internal/domains/notification/service"
	userMocks "flexwork/internal/domains/user/mocks"
	userModel "flexwork/internal/domains/user/model"
)

func newService(t *testing.T) (service.Notification, *notificationMocks.MockNotification, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := notificationMocks.NewMockNotification(ctrl)
	users := userMocks.NewMockUser(ctrl)

	return service.New(repo, users, mocks.NewOtel()), repo, users
}

func tokenPtr(token string) *string {
	return &token
}

var booking = bookingModel.Booking{
	ID:         "b-1",
	UserID:     "u-1",
	UserName:   "Ana",
	TeamID:     "t-1",
	Date:       "2024-03-15",
	Type:       bookingModel.TypeHomeOffice,
	Status:     bookingModel.StatusPending,
	ReviewerID: "m-1",
}

func TestNotificationService_SendBookingStatusNotification(t *testing.T) {
	tests := []struct {
		name      string
		status    bookingModel.Status
		wantTitle string
		wantBody  string
	}{
		{
			name:      "approved",
			status:    bookingModel.StatusApproved,
			wantTitle: "Booking approved",
			wantBody:  "Max approved your home office request for Fri, 15 Mar 2024.",
		},
		{
			name:      "declined",
			status:    bookingModel.StatusDeclined,
			wantTitle: "Booking declined",
			wantBody:  "Max declined your home office request for Fri, 15 Mar 2024.",
		},
		{
			name:      "other status",
			status:    bookingModel.StatusCancelled,
			wantTitle: "Booking updated",
			wantBody:  "Your home office request for Fri, 15 Mar 2024 is now CANCELLED.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, users := newService(t)

			users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(userModel.User{ID: "u-1", FCMToken: tokenPtr("token-1")}, nil)

			var inserted model.Notification

			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n model.Notification) error {
					inserted = n

					return nil
				})

			err := svc.SendBookingStatusNotification(context.Background(), booking, tt.status, "Max")
			require.NoError(t, err)

			assert.NotEmpty(t, inserted.ID)
			assert.Equal(t, "token-1", inserted.FCMToken)
			assert.Equal(t, tt.wantTitle, inserted.Title)
			assert.Equal(t, tt.wantBody, inserted.Body)
			assert.Equal(t, model.TypeBookingStatusUpdate, inserted.Type)
			assert.False(t, inserted.Processed)
			assert.Positive(t, inserted.CreatedAt)
			assert.Equal(t, model.Data{
				"bookingId": "b-1",
				"status":    tt.status.String(),
				"date":      "2024-03-15",
				"type":      "HOME_OFFICE",
			}, inserted.Data)
		})
	}
}

func TestNotificationService_MissingTokenIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		user userModel.User
		err  error
	}{
		{name: "unknown user", user: userModel.User{}},
		{name: "nil token", user: userModel.User{ID: "u-1"}},
		{name: "empty token", user: userModel.User{ID: "u-1", FCMToken: tokenPtr("")}},
		{name: "lookup error", err: errors.New("store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, users := newService(t)

			users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.user, tt.err)
			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

			err := svc.SendBookingStatusNotification(context.Background(), booking, bookingModel.StatusApproved, "Max")
			assert.NoError(t, err)
		})
	}
}

func TestNotificationService_SendNewBookingRequestNotification(t *testing.T) {
	t.Run("targets the manager", func(t *testing.T) {
		svc, repo, users := newService(t)

		users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "m-1", FCMToken: tokenPtr("manager-token")}, nil)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n model.Notification) error {
				assert.Equal(t, "manager-token", n.FCMToken)
				assert.Equal(t, "New booking request", n.Title)
				assert.Equal(t, "Ana requested home office on Fri, 15 Mar 2024.", n.Body)
				assert.Equal(t, model.TypeNewBookingRequest, n.Type)
				assert.Equal(t, "u-1", n.Data["userId"])
				assert.Equal(t, "Ana", n.Data["userName"])

				return nil
			})

		require.NoError(t, svc.SendNewBookingRequestNotification(context.Background(), booking, "m-1"))
	})

	t.Run("no manager id", func(t *testing.T) {
		svc, _, _ := newService(t)

		assert.NoError(t, svc.SendNewBookingRequestNotification(context.Background(), booking, ""))
	})

	t.Run("insert error", func(t *testing.T) {
		svc, repo, users := newService(t)

		users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "m-1", FCMToken: tokenPtr("manager-token")}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, svc.SendNewBookingRequestNotification(context.Background(), booking, "m-1"))
	})
}
