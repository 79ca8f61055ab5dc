package models

type UploadRequest struct {
	// Image is the meter photo as a base64-encoded string (raw base64, no data URL prefix).
	Image           string `json:"image"`
	CustomerCode    string `json:"customer_code" example:"cust-1"`
	MeasureDatetime string `json:"measure_datetime" example:"2024-05-01T10:00:00.000Z"`
	MeasureType     string `json:"measure_type" example:"WATER"`
}
