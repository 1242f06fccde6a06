package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"flexwork/infras/otel/mocks"
	s3Mocks "flexwork/infras/s3/mocks"
	bookingMocks "flexwork/internal/domains/booking/mocks"
	"flexwork/internal/domains/booking/model"
	"flexwork/internal/domains/export/service"
	userModel "flexwork/internal/domains/user/model"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
)

var admin = userDto.Identity{UserID: "a-1", Role: userModel.RoleAdmin}

func newService(t *testing.T) (service.Export, *bookingMocks.MockBookingService, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBookingService(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	return service.New(bookings, storage, mocks.NewOtel()), bookings, storage
}

func TestExport(t *testing.T) {
	t.Run("uploads a sheet with one row per booking", func(t *testing.T) {
		svc, bookings, storage := newService(t)

		bookings.EXPECT().GetBookingsForMonth(gomock.Any(), "2024-03").Return([]model.Booking{
			{ID: "b-1", UserName: "Ana", TeamID: "t-1", Date: "2024-03-15", Type: model.TypeHomeOffice, Status: model.StatusApproved, ReviewerID: "m-1"},
			{ID: "b-2", UserName: "Ben", TeamID: "t-1", Date: "2024-03-18", Type: model.TypeHomeOffice, Status: model.StatusPending, Comment: "plumber"},
		}, nil)

		var uploaded []byte

		storage.EXPECT().UploadFileBytes(gomock.Any(), "", "exports", gomock.Any(), constant.ContentTypeXLSX, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, directory, fileName, _ string, data []byte) (string, error) {
				assert.Regexp(t, regexp.MustCompile(`^bookings-2024-03-[0-9a-f-]{36}\.xlsx$`), fileName)
				uploaded = data

				return "https://cdn.example.com/" + directory + "/" + fileName, nil
			})

		res, err := svc.Export(context.Background(), "2024-03", admin)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Rows)
		assert.Contains(t, res.URL, res.FileName)

		book, err := excelize.OpenReader(bytes.NewReader(uploaded))
		require.NoError(t, err)

		rows, err := book.GetRows("Bookings")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Date", "User", "Team", "Type", "Status", "Reviewer", "Comment", "Created at"}, rows[0])
		assert.Equal(t, "2024-03-15", rows[1][0])
		assert.Equal(t, "APPROVED", rows[1][4])
		assert.Equal(t, "plumber", rows[2][6])
	})

	t.Run("plain users may not export", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Export(context.Background(), "2024-03", userDto.Identity{UserID: "u-1", Role: userModel.RoleUser})
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, bookings, storage := newService(t)

		bookings.EXPECT().GetBookingsForMonth(gomock.Any(), "2024-03").Return(nil, nil)
		storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket missing"))

		_, err := svc.Export(context.Background(), "2024-03", admin)
		assert.Error(t, err)
	})
}
