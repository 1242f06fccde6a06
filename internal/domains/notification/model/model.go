package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID            = "id"
	FieldFCMToken      = "fcm_token"
	FieldTitle         = "title"
	FieldBody          = "body"
	FieldData          = "data"
	FieldType          = "type"
	FieldCreatedAt     = "created_at"
	FieldProcessed     = "processed"
	FieldProcessedAt   = "processed_at"
	FieldProcessStatus = "process_status"
)

const (
	TypeBookingStatusUpdate = "booking_status_update"
	TypeNewBookingRequest   = "new_booking_request"
)

const (
	ProcessStatusProcessing = "processing"
	ProcessStatusSuccess    = "success"

	processStatusErrorPrefix = "error: "
)

// ProcessStatusError renders the terminal status stored for a failed delivery.
func ProcessStatusError(err error) string {
	return processStatusErrorPrefix + err.Error()
}

func IsProcessStatusError(status string) bool {
	return strings.HasPrefix(status, processStatusErrorPrefix)
}

// Notification is one queued push message. CreatedAt is in epoch milliseconds.
type Notification struct {
	ID            string     `db:"id"`
	FCMToken      string     `db:"fcm_token"`
	Title         string     `db:"title"`
	Body          string     `db:"body"`
	Data          Data       `db:"data"`
	Type          string     `db:"type"`
	CreatedAt     int64      `db:"created_at"`
	Processed     bool       `db:"processed"`
	ProcessedAt   *time.Time `db:"processed_at"`
	ProcessStatus string     `db:"process_status"`
}

// Data is the free-form payload stored as jsonb.
type Data map[string]any

func (d Data) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification data: %w", err)
	}

	// lib/pq sends []byte as bytea, which jsonb columns reject.
	return string(raw), nil
}

func (d *Data) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*d = Data{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into notification data", src)
	}

	out := Data{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode notification data: %w", err)
	}

	*d = out

	return nil
}

// Strings converts every value to a string: strings pass through, everything
// else is JSON-encoded.
func (d Data) Strings() map[string]string {
	out := make(map[string]string, len(d))

	for key, value := range d {
		if str, ok := value.(string); ok {
			out[key] = str

			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			out[key] = fmt.Sprint(value)

			continue
		}

		out[key] = string(raw)
	}

	return out
}
