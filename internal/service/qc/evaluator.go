package qc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"apparel-oms/internal/storage"
)

var ErrInvalidQuantity = errors.New("passed + failed quantity exceeds total")

// PassRate returns the inspection pass rate as a whole percent. An empty
// batch has a pass rate of zero.
func PassRate(passed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// HasCriticalDefect reports whether any failed checkpoint carries a
// critical severity.
func HasCriticalDefect(checkpoints []storage.QCCheckpoint) bool {
	for _, cp := range checkpoints {
		if cp.Passed {
			continue
		}
		if cp.DefectSeverity != nil && *cp.DefectSeverity == storage.DefectCritical {
			return true
		}
	}
	return false
}

// OverallResult applies the inspection verdict in precedence order: a
// critical defect or a pass rate under 80 fails the batch outright, any
// rework or a pass rate under 100 downgrades to pass_with_rework.
func OverallResult(passRate int, hasRework, hasCriticalFail bool) storage.QCResult {
	switch {
	case hasCriticalFail || passRate < 80:
		return storage.QCFail
	case hasRework || passRate < 100:
		return storage.QCPassWithRework
	default:
		return storage.QCPass
	}
}

// Evaluate validates the submitted quantities and fills in the derived
// pass rate and overall result.
func Evaluate(rec storage.QCRecord) (storage.QCRecord, error) {
	const op = "service.qc.Evaluate"

	if rec.TotalQty < 0 || rec.PassedQty < 0 || rec.FailedQty < 0 || rec.ReworkQty < 0 {
		return rec, fmt.Errorf("%s: %w", op, ErrInvalidQuantity)
	}
	if rec.PassedQty+rec.FailedQty > rec.TotalQty {
		return rec, fmt.Errorf("%s: %w", op, ErrInvalidQuantity)
	}

	rec.PassRate = PassRate(rec.PassedQty, rec.TotalQty)
	rec.OverallResult = OverallResult(rec.PassRate, rec.ReworkQty > 0, HasCriticalDefect(rec.Checkpoints))

	if rec.InspectedAt.IsZero() {
		rec.InspectedAt = time.Now()
	}

	return rec, nil
}
