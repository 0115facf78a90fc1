package usecase

import (
	"fmt"

	"github.com/sourcegraph/conc/panics"

	"github.com/riskibarqy/cricktrackr/internal/platform/metrics"
)

type ItemStatus string

const (
	ItemStatusSuccess ItemStatus = "success"
	ItemStatusSkipped ItemStatus = "skipped"
	ItemStatusFailed  ItemStatus = "failed"
)

// ItemOutcome is the result of reconciling one item of a batch.
type ItemOutcome struct {
	Key     string     `json:"key"`
	Status  ItemStatus `json:"status"`
	Message string     `json:"message,omitempty"`
}

// BatchReport aggregates per-item outcomes in arrival order.
type BatchReport struct {
	Items        []ItemOutcome `json:"items"`
	SuccessCount int           `json:"successCount"`
	SkippedCount int           `json:"skippedCount"`
	FailedCount  int           `json:"failedCount"`
}

func newBatchReport(capacity int) BatchReport {
	return BatchReport{Items: make([]ItemOutcome, 0, capacity)}
}

func (r *BatchReport) add(kind, key string, status ItemStatus, err error) {
	outcome := ItemOutcome{Key: key, Status: status}
	if err != nil {
		outcome.Message = err.Error()
	}
	r.Items = append(r.Items, outcome)

	switch status {
	case ItemStatusSuccess:
		r.SuccessCount++
	case ItemStatusSkipped:
		r.SkippedCount++
	default:
		r.FailedCount++
	}
	metrics.ReconciledItemsTotal.WithLabelValues(kind, string(status)).Inc()
}

// runItem executes fn and converts a panic into an error so one bad item
// cannot abort the rest of the batch.
func runItem(fn func() error) (err error) {
	recovered := panics.Try(func() {
		err = fn()
	})
	if recovered != nil {
		return fmt.Errorf("recovered panic: %w", recovered.AsError())
	}
	return err
}
