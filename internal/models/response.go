package models

type UploadResponse struct {
	ImageURL string `json:"image_url"`
	// MeasureValue is nil when no numeric reading could be extracted from the
	// model's answer; that still serializes as "measure_value": null on a 200.
	MeasureValue *int   `json:"measure_value"`
	MeasureUUID  string `json:"measure_uuid"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MeasureErrorResponse is the coded error shape used by the upload endpoint
// for duplicate, extraction and storage failures.
type MeasureErrorResponse struct {
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
