package validation

import (
	"regexp"
	"strings"
	"time"

	"meter-reading-backend/internal/models"
)

const (
	CodeInvalidImage        = "INVALID_IMAGE"
	CodeInvalidType         = "INVALID_TYPE"
	CodeInvalidCustomerCode = "INVALID_CUSTOMER_CODE"
	CodeInvalidDatetime     = "INVALID_DATETIME"
)

// canonicalISO8601 is the only accepted textual form of a measurement
// instant: millisecond precision, UTC designator. A value is valid iff
// re-serializing the parsed instant reproduces the input exactly.
const canonicalISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Strict base64 grammar: full groups of 4, optionally terminated by a padded
// tail. Checked before decoding so malformed payloads never reach storage.
var base64Pattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

// FieldError classifies a single invalid request field.
type FieldError struct {
	Code    string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidateUploadRequest checks the request fields in a fixed order, stopping
// at the first violation. On success it returns the parsed measurement
// instant, which the pipeline uses for the monthly duplicate check.
func ValidateUploadRequest(req models.UploadRequest) (time.Time, *FieldError) {
	if req.Image == "" || !base64Pattern.MatchString(req.Image) {
		return time.Time{}, &FieldError{
			Code:    CodeInvalidImage,
			Message: "Invalid image format. Expected base64 string.",
		}
	}

	if req.MeasureType != "WATER" && req.MeasureType != "GAS" {
		return time.Time{}, &FieldError{
			Code:    CodeInvalidType,
			Message: `Invalid measure type. Expected "WATER" or "GAS".`,
		}
	}

	if strings.TrimSpace(req.CustomerCode) == "" {
		return time.Time{}, &FieldError{
			Code:    CodeInvalidCustomerCode,
			Message: "Invalid customer code. Expected non-empty string.",
		}
	}

	measuredAt, err := time.Parse(canonicalISO8601, req.MeasureDatetime)
	if err != nil || measuredAt.UTC().Format(canonicalISO8601) != req.MeasureDatetime {
		return time.Time{}, &FieldError{
			Code:    CodeInvalidDatetime,
			Message: "Invalid measure_datetime. Expected a valid ISO 8601 datetime string.",
		}
	}

	return measuredAt.UTC(), nil
}
