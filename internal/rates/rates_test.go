package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
)

func TestAvailableMinutes(t *testing.T) {
	c := DefaultScheduleConstants()
	assert.Equal(t, 510, c.AvailableMinutes(), "11h day minus lunch and turnover")
}

func TestCostBandForContext(t *testing.T) {
	uk := CostBandForContext(domain.ContextUK, "")
	assert.Equal(t, 215000.0, uk.Standard)

	pl := CostBandForContext(domain.ContextEU, domain.EUPoland)
	assert.Equal(t, 115000.0, pl.Standard)

	// unknown country falls back to EU average
	avg := CostBandForContext(domain.ContextEU, "Atlantis")
	assert.Equal(t, EUAverageCosts(), avg)
}

func TestEUCountryCostsOrdering(t *testing.T) {
	for country, c := range EUCountryCostTable() {
		assert.Less(t, c.CostPerDay.Lean, c.CostPerDay.Standard, "country=%s", country)
		assert.Less(t, c.CostPerDay.Standard, c.CostPerDay.Ambitious, "country=%s", country)
	}
}

func TestConvertToGBP(t *testing.T) {
	assert.Equal(t, 500.0, ConvertToGBP(500, domain.EUAverage), "GBP passes through")
	got := ConvertToGBP(474540, domain.EUPoland)
	assert.InDelta(t, 100000, got, 1, "PLN divides by the buffered rate")
}

func TestUsageRatesRiseWithTerritory(t *testing.T) {
	table := UsageRateTable()
	uk := table[domain.UsageUK]
	us := table[domain.UsageUS]
	ww := table[domain.UsageWorldwide]
	assert.Less(t, uk.PrincipalFeatured.Standard, us.PrincipalFeatured.Standard)
	assert.Less(t, us.PrincipalFeatured.Standard, ww.PrincipalFeatured.Standard)
}

func TestMaxPrepDays(t *testing.T) {
	r := DefaultUKAboveLineEU()
	assert.Equal(t, 6, r.MaxPrepDays(), "wardrobe needs the longest prep run")
}

func TestBudgetRangeForContext(t *testing.T) {
	r := BudgetRangeForContext(domain.ContextUK, 2, ComplexityStandard)
	assert.Equal(t, 400000.0, r.Avg)
	assert.Equal(t, 340000.0, r.Min)
	assert.Equal(t, 500000.0, r.Max)

	// unknown complexity falls back to standard
	fallback := BudgetRangeForContext(domain.ContextUK, 2, "impossible")
	assert.Equal(t, r, fallback)
}

func TestFindSimilarProjects(t *testing.T) {
	got := FindSimilarProjects("Poland", 3)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)
}
