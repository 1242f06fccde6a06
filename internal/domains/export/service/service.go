package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"flexwork/infras/otel"
	"flexwork/infras/s3"
	bookingService "flexwork/internal/domains/booking/service"
	"flexwork/internal/domains/export/model/dto"
	userDto "flexwork/internal/domains/user/model/dto"
	"flexwork/shared/constant"
	"flexwork/shared/failure"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const exportDirectory = "exports"

var ErrForbidden = failure.Forbidden("only managers and admins can export bookings")

type Export interface {
	// Export writes all bookings of month ("YYYY-MM") to an xlsx file and uploads it.
	Export(ctx context.Context, month string, requester userDto.Identity) (dto.ExportResponse, error)
}

type serviceImpl struct {
	bookings bookingService.Booking
	storage  s3.S3
	otel     otel.Otel
}

func New(bookings bookingService.Booking, storage s3.S3, otel otel.Otel) Export {
	return &serviceImpl{
		bookings: bookings,
		storage:  storage,
		otel:     otel,
	}
}

func (s *serviceImpl) Export(ctx context.Context, month string, requester userDto.Identity) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !requester.Role.CanExportBookings() {
		return res, ErrForbidden
	}

	bookings, err := s.bookings.GetBookingsForMonth(ctx, month)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	content, err := writeWorkbook(bookings)
	if err != nil {
		log.Error().Err(err).Str("month", month).Msg("failed to build export workbook")

		return res, fmt.Errorf("failed to build export workbook: %w", err)
	}

	fileName := fmt.Sprintf("bookings-%s-%s.xlsx", month, uuid.NewString())

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, exportDirectory, fileName, constant.ContentTypeXLSX, content)
	if err != nil {
		return res, fmt.Errorf("failed to upload export: %w", err)
	}

	log.Info().Str("month", month).Int("rows", len(bookings)).Str("requestedBy", requester.UserID).Msg("bookings exported")

	return dto.ExportResponse{URL: url, FileName: fileName, Rows: len(bookings)}, nil
}
