package changefee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apparel-oms/internal/storage"
)

// test rates injected instead of the shared default table
var testRates = map[storage.ProductionPhase]Rates{
	storage.PhaseDraft: {},
	storage.PhaseDesign: {
		DesignFee: 500, BaseFee: 300,
		QuantityChangePct: 5, AddWorkPct: 5, RemoveWorkPenaltyPct: 5, CancelPenaltyPct: 10,
	},
	storage.PhaseInProduction: {
		DesignFee: 2500, BaseFee: 1500,
		QuantityChangePct: 15, AddWorkPct: 25, RemoveWorkPenaltyPct: 20, CancelPenaltyPct: 40,
	},
}

func TestCalculateFees_QuantityIncreaseInProduction(t *testing.T) {
	calc := NewCalculator(testRates)

	fees, err := calc.CalculateFees(storage.PhaseInProduction, storage.ChangeQuantity, 10000, Options{QuantityChange: 5})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, fees.MaterialFee)
	assert.Equal(t, 1500.0, fees.TotalFee)
	assert.Zero(t, fees.RushFee)
	assert.Zero(t, fees.OtherFee)
	assert.Zero(t, fees.Discount)
}

func TestCalculateFees_RushIsHalfOfComponents(t *testing.T) {
	calc := NewCalculator(testRates)

	fees, err := calc.CalculateFees(storage.PhaseInProduction, storage.ChangeQuantity, 10000, Options{QuantityChange: 5, IsRush: true})

	assert.NoError(t, err)
	assert.Equal(t, 750.0, fees.RushFee)
	assert.Equal(t, 2250.0, fees.TotalFee)

	// rush is exactly half of base+design+rework+material+waste
	sum := fees.BaseFee + fees.DesignFee + fees.ReworkFee + fees.MaterialFee + fees.WasteFee
	assert.Equal(t, sum*0.5, fees.RushFee)
}

func TestCalculateFees_QuantityDecreaseIsFree(t *testing.T) {
	calc := NewCalculator(testRates)

	fees, err := calc.CalculateFees(storage.PhaseInProduction, storage.ChangeQuantity, 10000, Options{QuantityChange: -3})

	assert.NoError(t, err)
	assert.Zero(t, fees.TotalFee)
}

func TestCalculateFees_PerChangeType(t *testing.T) {
	calc := NewCalculator(testRates)

	cases := []struct {
		name       string
		changeType storage.ChangeType
		wantBase   float64
		wantDesign float64
	}{
		{"design revision", storage.ChangeDesignRevision, 0, 2500},
		{"size change", storage.ChangeSize, 1500, 0},
		{"color change", storage.ChangeColor, 1500, 0},
		{"add work", storage.ChangeAddWork, 2500, 0},     // 10000 * 25%
		{"remove work", storage.ChangeRemoveWork, 2000, 0}, // penalty 20%
		{"cancel", storage.ChangeCancel, 4000, 0},          // penalty 40%
		{"material change manual", storage.ChangeMaterial, 0, 0},
		{"due date manual", storage.ChangeDueDate, 0, 0},
		{"other manual", storage.ChangeOther, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fees, err := calc.CalculateFees(storage.PhaseInProduction, tc.changeType, 10000, Options{})
			assert.NoError(t, err)
			assert.Equal(t, tc.wantBase, fees.BaseFee)
			assert.Equal(t, tc.wantDesign, fees.DesignFee)
			assert.Equal(t, tc.wantBase+tc.wantDesign, fees.TotalFee)
		})
	}
}

func TestCalculateFees_WasteAndReworkIndependentOfType(t *testing.T) {
	calc := NewCalculator(testRates)

	fees, err := calc.CalculateFees(storage.PhaseDesign, storage.ChangeOther, 1000, Options{
		WasteQty: 12, WasteUnitCost: 45, ReworkFee: 200,
	})

	assert.NoError(t, err)
	assert.Equal(t, 540.0, fees.WasteFee)
	assert.Equal(t, 200.0, fees.ReworkFee)
	assert.Equal(t, 740.0, fees.TotalFee)
}

func TestCalculateFees_NeverNegative(t *testing.T) {
	calc := NewCalculator(testRates)

	types := []storage.ChangeType{
		storage.ChangeDesignRevision, storage.ChangeQuantity, storage.ChangeSize,
		storage.ChangeColor, storage.ChangeAddWork, storage.ChangeRemoveWork,
		storage.ChangeMaterial, storage.ChangeShipping, storage.ChangeDueDate,
		storage.ChangeCancel, storage.ChangeOther,
	}
	for phase := range testRates {
		for _, ct := range types {
			for _, rush := range []bool{false, true} {
				fees, err := calc.CalculateFees(phase, ct, 10000, Options{QuantityChange: 3, WasteQty: 2, WasteUnitCost: 10, IsRush: rush})
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, fees.TotalFee, 0.0, "%s/%s rush=%v", phase, ct, rush)
			}
		}
	}
}

func TestCalculateFees_NegativeAmountRejected(t *testing.T) {
	calc := NewCalculator(testRates)

	_, err := calc.CalculateFees(storage.PhaseDesign, storage.ChangeAddWork, -1, Options{})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestImpactLevel_Matrix(t *testing.T) {
	cases := []struct {
		phase           storage.ProductionPhase
		started, sched  bool
		want            storage.ImpactLevel
	}{
		{storage.PhaseDraft, false, false, storage.ImpactNone},
		{storage.PhaseDraft, true, true, storage.ImpactNone},
		{storage.PhaseDesign, false, true, storage.ImpactLow},
		{storage.PhaseMockupApproved, false, false, storage.ImpactLow},
		{storage.PhaseMockupApproved, true, false, storage.ImpactMedium},
		{storage.PhasePreProduction, false, true, storage.ImpactMedium},
		{storage.PhasePreProduction, false, false, storage.ImpactLow},
		{storage.PhaseInProduction, true, false, storage.ImpactHigh},
		{storage.PhaseInProduction, false, false, storage.ImpactMedium},
		{storage.PhaseQCComplete, false, false, storage.ImpactCritical},
		{storage.PhaseQCComplete, true, true, storage.ImpactCritical},
	}

	for _, tc := range cases {
		got := ImpactLevel(tc.phase, tc.started, tc.sched)
		assert.Equal(t, tc.want, got, "%s started=%v sched=%v", tc.phase, tc.started, tc.sched)
	}
}

func TestImpactLevel_UnknownPhaseDefaultsMedium(t *testing.T) {
	for _, started := range []bool{false, true} {
		for _, sched := range []bool{false, true} {
			assert.Equal(t, storage.ImpactMedium, ImpactLevel("archived", started, sched))
		}
	}
}

func TestPhaseForStatus_Total(t *testing.T) {
	assert.Equal(t, storage.PhaseDraft, PhaseForStatus(storage.StatusQuoted))
	assert.Equal(t, storage.PhaseDesign, PhaseForStatus(storage.StatusAwaitingMockup))
	assert.Equal(t, storage.PhaseMockupApproved, PhaseForStatus(storage.StatusAwaitingMaterial))
	assert.Equal(t, storage.PhasePreProduction, PhaseForStatus(storage.StatusQueued))
	assert.Equal(t, storage.PhaseInProduction, PhaseForStatus(storage.StatusInProduction))
	assert.Equal(t, storage.PhaseQCComplete, PhaseForStatus(storage.StatusQCPending))
	assert.Equal(t, storage.PhasePreProduction, PhaseForStatus(storage.StatusOnHold))
}

func TestProductionStarted(t *testing.T) {
	assert.False(t, ProductionStarted(storage.StatusQueued))
	assert.True(t, ProductionStarted(storage.StatusInProduction))
	assert.True(t, ProductionStarted(storage.StatusShipped))
}
