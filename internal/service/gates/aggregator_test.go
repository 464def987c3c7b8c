package gates

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"apparel-oms/internal/storage"
)

func gate(t storage.GateType, status storage.GateStatus, mandatory bool) storage.ApprovalGate {
	return storage.ApprovalGate{GateType: t, Status: status, IsMandatory: mandatory}
}

func TestSummarize_AllMandatoryApprovedUnlocks(t *testing.T) {
	summary := Summarize([]storage.ApprovalGate{
		gate(storage.GateDesign, storage.GateApproved, true),
		gate(storage.GateMockup, storage.GateApproved, true),
		gate(storage.GatePayment, storage.GateApproved, true),
	})

	assert.True(t, summary.ProductionUnlocked)
	assert.Empty(t, summary.BlockingGates)
}

func TestSummarize_PendingMandatoryBlocks(t *testing.T) {
	summary := Summarize([]storage.ApprovalGate{
		gate(storage.GateDesign, storage.GateApproved, true),
		gate(storage.GateMockup, storage.GateApproved, true),
		gate(storage.GateMaterial, storage.GatePending, true),
	})

	assert.False(t, summary.ProductionUnlocked)
	assert.Equal(t, []string{"material"}, summary.BlockingGates)
}

func TestSummarize_OptionalGateNeverBlocks(t *testing.T) {
	summary := Summarize([]storage.ApprovalGate{
		gate(storage.GateDesign, storage.GateApproved, true),
		gate(storage.GateMaterial, storage.GateRejected, false),
	})

	assert.True(t, summary.ProductionUnlocked)
}

func TestSummarize_CustomerApprovalStillBlocks(t *testing.T) {
	g := gate(storage.GateMockup, storage.GateApproved, true)
	g.RequiresCustomerApproval = true
	// internally approved, customer has not confirmed yet

	summary := Summarize([]storage.ApprovalGate{g})

	assert.False(t, summary.ProductionUnlocked)
	assert.Equal(t, []string{"mockup"}, summary.BlockingGates)

	g.CustomerConfirmed = true
	summary = Summarize([]storage.ApprovalGate{g})
	assert.True(t, summary.ProductionUnlocked)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	input := []storage.ApprovalGate{
		gate(storage.GateProductionStart, storage.GatePending, true),
		gate(storage.GateDesign, storage.GateInProgress, true),
		gate(storage.GateMockup, storage.GateApproved, true),
		gate(storage.GatePayment, storage.GateRejected, true),
		gate(storage.GateMaterial, storage.GateApproved, false),
	}

	want := Summarize(input)
	assert.Equal(t, []string{"design", "payment", "production_start"}, want.BlockingGates)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]storage.ApprovalGate, len(input))
		copy(shuffled, input)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Summarize(shuffled))
	}
}

func TestSummarize_NoGates(t *testing.T) {
	summary := Summarize(nil)
	// zero mandatory gates are non-approved, so nothing blocks
	assert.True(t, summary.ProductionUnlocked)
	assert.Empty(t, summary.BlockingGates)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(storage.ApprovalGate{ApprovedItems: 3, TotalItems: 0}))
	assert.Equal(t, 50, ProgressPercent(storage.ApprovalGate{ApprovedItems: 1, TotalItems: 2}))
	assert.Equal(t, 67, ProgressPercent(storage.ApprovalGate{ApprovedItems: 2, TotalItems: 3}))
	assert.Equal(t, 100, ProgressPercent(storage.ApprovalGate{ApprovedItems: 8, TotalItems: 8}))
}
