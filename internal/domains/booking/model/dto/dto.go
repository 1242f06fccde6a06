package dto

import (
	"encoding/json"
	"flexwork/internal/domains/booking/model"
	"flexwork/shared/constant"
	gDto "flexwork/shared/dto"
	"flexwork/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Date    string `json:"date"    validate:"required,isodate"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
	Type    string `json:"type"    validate:"omitempty,oneof=HOME_OFFICE"`
}

func (r CreateBookingRequest) ToInput(userID, userName, teamID string) CreateBookingInput {
	bookingType := model.TypeHomeOffice
	if r.Type != constant.Empty {
		bookingType = model.Type(r.Type)
	}

	return CreateBookingInput{
		Date:     r.Date,
		Comment:  r.Comment,
		UserID:   userID,
		UserName: userName,
		TeamID:   teamID,
		Type:     bookingType,
	}
}

// CreateBookingInput carries everything needed to create a booking on behalf of a user.
type CreateBookingInput struct {
	Date     string
	Comment  string
	UserID   string
	UserName string
	TeamID   string
	Type     model.Type
}

// ToModel builds a new PENDING booking assigned to reviewerID.
func (in CreateBookingInput) ToModel(reviewerID string) model.Booking {
	bookingType := in.Type
	if bookingType == constant.Empty {
		bookingType = model.TypeHomeOffice
	}

	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		UserName:   in.UserName,
		TeamID:     in.TeamID,
		Date:       in.Date,
		Type:       bookingType,
		Status:     model.StatusPending,
		Comment:    in.Comment,
		CreatedAt:  timezone.Now().Format(constant.DateFormat),
		ReviewerID: reviewerID,
	}
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type ReviewBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED DECLINED"`
}

type ReviewBatchRequest struct {
	IDs    []string `json:"ids"    validate:"required,dive,required"`
	Status string   `json:"status" validate:"required,oneof=APPROVED DECLINED"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	TeamID     string `json:"teamId"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	ReviewerID string `json:"reviewerId"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.TeamID = model.TeamID
	r.Date = model.Date
	r.Type = string(model.Type)
	r.Status = model.Status.String()
	r.Comment = model.Comment
	r.CreatedAt = model.CreatedAt
	r.ReviewerID = model.ReviewerID
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// GetBookingsPageResponse is one page of bookings. Page and Limit are zero
// when the whole list was returned.
type GetBookingsPageResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Page     int               `json:"page,omitempty"`
	Limit    int               `json:"limit,omitempty"`
	Total    int               `json:"total"`
}

func (r *GetBookingsPageResponse) FromModels(models []model.Booking, params gDto.QueryParams, total int) {
	var res GetBookingsResponse
	res.FromModels(models)

	r.Bookings = res.Bookings
	r.Page = params.Page
	r.Limit = params.Limit
	r.Total = total
}

// StreamFrame is one message on a live booking stream: a full snapshot or an error.
type StreamFrame struct {
	Bookings []BookingResponse
	Error    string
}

func (f StreamFrame) MarshalJSON() ([]byte, error) {
	if f.Error != constant.Empty {
		return json.Marshal(struct { //nolint:wrapcheck
			Error string `json:"error"`
		}{f.Error})
	}

	bookings := f.Bookings
	if bookings == nil {
		bookings = []BookingResponse{}
	}

	return json.Marshal(struct { //nolint:wrapcheck
		Bookings []BookingResponse `json:"bookings"`
	}{bookings})
}

func NewStreamFrame(models []model.Booking, err error) StreamFrame {
	if err != nil {
		return StreamFrame{Error: err.Error()}
	}

	var res GetBookingsResponse
	res.FromModels(models)

	return StreamFrame{Bookings: res.Bookings}
}
