package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apparel-oms/internal/storage"
)

func sev(s storage.DefectSeverity) *storage.DefectSeverity { return &s }

func TestPassRate(t *testing.T) {
	assert.Equal(t, 0, PassRate(0, 0))
	assert.Equal(t, 100, PassRate(50, 50))
	assert.Equal(t, 82, PassRate(82, 100))
	assert.Equal(t, 67, PassRate(2, 3))
}

func TestHasCriticalDefect(t *testing.T) {
	assert.False(t, HasCriticalDefect(nil))

	// a passed checkpoint with critical severity noted does not count
	assert.False(t, HasCriticalDefect([]storage.QCCheckpoint{
		{Name: "stitching", Passed: true, DefectSeverity: sev(storage.DefectCritical)},
		{Name: "print", Passed: false, DefectSeverity: sev(storage.DefectMinor)},
	}))

	assert.True(t, HasCriticalDefect([]storage.QCCheckpoint{
		{Name: "stitching", Passed: true},
		{Name: "sizing", Passed: false, DefectSeverity: sev(storage.DefectCritical)},
	}))
}

func TestOverallResult_Precedence(t *testing.T) {
	// critical defect fails even at a perfect pass rate
	assert.Equal(t, storage.QCFail, OverallResult(100, false, true))
	assert.Equal(t, storage.QCFail, OverallResult(100, true, true))

	// the 80 floor is hard, rework or not
	assert.Equal(t, storage.QCFail, OverallResult(79, false, false))
	assert.Equal(t, storage.QCFail, OverallResult(79, true, false))

	// any shortfall from 100 forces pass_with_rework, even with zero rework recorded
	assert.Equal(t, storage.QCPassWithRework, OverallResult(82, false, false))
	assert.Equal(t, storage.QCPassWithRework, OverallResult(99, false, false))
	assert.Equal(t, storage.QCPassWithRework, OverallResult(100, true, false))

	assert.Equal(t, storage.QCPass, OverallResult(100, false, false))
}

func TestEvaluate_Scenario(t *testing.T) {
	rec, err := Evaluate(storage.QCRecord{
		OrderID:   3,
		TotalQty:  100,
		PassedQty: 82,
		FailedQty: 18,
	})

	assert.NoError(t, err)
	assert.Equal(t, 82, rec.PassRate)
	assert.Equal(t, storage.QCPassWithRework, rec.OverallResult)
	assert.False(t, rec.InspectedAt.IsZero())
}

func TestEvaluate_CleanBatch(t *testing.T) {
	rec, err := Evaluate(storage.QCRecord{TotalQty: 40, PassedQty: 40})

	assert.NoError(t, err)
	assert.Equal(t, 100, rec.PassRate)
	assert.Equal(t, storage.QCPass, rec.OverallResult)
}

func TestEvaluate_CriticalForcesFail(t *testing.T) {
	rec, err := Evaluate(storage.QCRecord{
		TotalQty:  100,
		PassedQty: 100,
		Checkpoints: []storage.QCCheckpoint{
			{Name: "colorfastness", Passed: false, DefectSeverity: sev(storage.DefectCritical)},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, storage.QCFail, rec.OverallResult)
}

func TestEvaluate_InvalidQuantities(t *testing.T) {
	_, err := Evaluate(storage.QCRecord{TotalQty: 10, PassedQty: 8, FailedQty: 5})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Evaluate(storage.QCRecord{TotalQty: -1})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
