package dedup

import (
	"context"
	"time"
)

// Checker reports whether a customer already submitted a reading of the
// given type in the month containing the measurement timestamp.
type Checker interface {
	AlreadyReported(ctx context.Context, customerCode, measureType string, year int, month time.Month) (bool, error)
}

// NoopChecker never reports a duplicate. There is no reading store yet, so
// this keeps the monthly-report hook in the pipeline until a persistent
// implementation replaces it.
type NoopChecker struct{}

func (NoopChecker) AlreadyReported(ctx context.Context, customerCode, measureType string, year int, month time.Month) (bool, error) {
	return false, nil
}
