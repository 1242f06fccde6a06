package dto

const (
	ResultStatusSuccess = "success"
	ResultStatusError   = "error"

	// ResultSkipped is reported for a notification another worker claimed first.
	ResultSkipped = "skipped"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ProcessResult is the outcome for one notification. Result holds the provider
// message id on success.
type ProcessResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ProcessResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Processed int             `json:"processed"`
	Results   []ProcessResult `json:"results"`
}

type SendTestRequest struct {
	FCMToken string         `json:"fcmToken" validate:"required"`
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Data     map[string]any `json:"data"`
}

type SendTestResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
