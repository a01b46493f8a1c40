package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"veritas/internal/records"
)

func TestRequiresExplanation(t *testing.T) {
	assert.False(t, RequiresExplanation(records.MethodBankTransfer))
	assert.False(t, RequiresExplanation(records.MethodWireTransfer))
	assert.True(t, RequiresExplanation(records.MethodCashCourier))
	assert.True(t, RequiresExplanation(records.MethodMoneyServiceBusiness))
	assert.True(t, RequiresExplanation(records.MethodCryptocurrency))
	assert.True(t, RequiresExplanation(records.MethodOther))
}

func TestRequiresComplianceReview(t *testing.T) {
	tests := []struct {
		name string
		rec  records.IncomeRecord
		want bool
	}{
		{
			name: "amount alone sufficient",
			rec:  records.IncomeRecord{Amount: 150000, DonorType: records.DonorIndividual},
			want: true,
		},
		{
			name: "corporate donor alone sufficient",
			rec:  records.IncomeRecord{Amount: 500, DonorType: records.DonorCorporate},
			want: true,
		},
		{
			name: "related party alone sufficient",
			rec:  records.IncomeRecord{Amount: 500, DonorType: records.DonorIndividual, IsRelatedParty: true},
			want: true,
		},
		{
			name: "small individual donation needs no review",
			rec:  records.IncomeRecord{Amount: 500, DonorType: records.DonorIndividual},
			want: false,
		},
		{
			name: "threshold is exclusive",
			rec:  records.IncomeRecord{Amount: 100000, DonorType: records.DonorIndividual},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresComplianceReview(tt.rec))
		})
	}
}

func TestIsHighRisk(t *testing.T) {
	assert.True(t, IsHighRisk(records.Country{Code: "SS", HighRisk: true}))
	assert.False(t, IsHighRisk(records.Country{Code: "FR"}))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0.0, percentOf(5, 0), "zero total must yield 0, not NaN")
	assert.InDelta(t, 70.0, percentOf(7000, 10000), 1e-9)
}
