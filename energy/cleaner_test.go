package energy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSentinelBecomesMissing(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy Production", YearMonth: 201706, Value: NotAvailable},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)

	rec := cleaned[0]
	assert.Equal(t, "Solar", rec.Source)
	assert.Equal(t, time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Nil(t, rec.GWh, "sentinel must map to missing, never a number")
	assert.Nil(t, rec.TWh)
}

func TestCleanUnitConversion(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy Production", YearMonth: 202001, Value: "0.5"},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	require.NotNil(t, cleaned[0].GWh)

	assert.InDelta(t, 0.5*GWhPerQuadBTU, *cleaned[0].GWh, 1e-9)
	assert.InDelta(t, *cleaned[0].GWh/1000, *cleaned[0].TWh, 1e-9)
}

func TestCleanLabelNormalization(t *testing.T) {
	raw := []RawRecord{
		{Description: "Natural Gas (Dry) Production", YearMonth: 202001, Value: "1.0"},
		{Description: "Nuclear Electric Power Production", YearMonth: 202001, Value: "1.0"},
		{Description: "Hydroelectric Power", YearMonth: 202001, Value: "1.0"},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)

	sources := make([]string, len(cleaned))
	for i, r := range cleaned {
		sources[i] = r.Source
	}
	assert.ElementsMatch(t, []string{"Natural Gas", "Nuclear", "Hydroelectric"}, sources)
}

func TestCleanCustomStripWords(t *testing.T) {
	raw := []RawRecord{
		{Description: "Wind Generation Total", YearMonth: 202001, Value: "1.0"},
	}

	cleaned, err := Clean(raw, &CleanOptions{StripWords: []string{" Generation", " Total"}})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "Wind", cleaned[0].Source)
}

func TestCleanParseErrorOnUnknownString(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 202001, Value: "n/a"},
	}

	_, err := Clean(raw, nil)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "n/a", perr.Value)
	assert.Equal(t, 202001, perr.YearMonth)
}

func TestCleanDropsInvalidYearMonth(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 202013, Value: "1.0"}, // month 13
		{Description: "Solar Energy", YearMonth: 0, Value: "1.0"},
		{Description: "Solar Energy", YearMonth: 202001, Value: "1.0"},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cleaned[0].Date)
}

func TestCleanAggregatesDuplicates(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 202001, Value: "0.2"},
		{Description: "Solar Energy Production", YearMonth: 202001, Value: "0.3"},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1, "same normalized label and month must merge")
	require.NotNil(t, cleaned[0].GWh)
	assert.InDelta(t, 0.5*GWhPerQuadBTU, *cleaned[0].GWh, 1e-6)
}

func TestCleanAllMissingGroupStaysMissing(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 202001, Value: NotAvailable},
		{Description: "Solar Energy", YearMonth: 202001, Value: NotAvailable},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Nil(t, cleaned[0].GWh, "an all-missing group must not sum to zero")
}

func TestCleanMixedMissingAndNumeric(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 202001, Value: NotAvailable},
		{Description: "Solar Energy", YearMonth: 202001, Value: "0.4"},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	require.NotNil(t, cleaned[0].GWh)
	assert.InDelta(t, 0.4*GWhPerQuadBTU, *cleaned[0].GWh, 1e-6)
}

func TestCleanAggregationIdempotence(t *testing.T) {
	// Cleaning duplicated rows must equal cleaning the pre-aggregated data.
	dup := []RawRecord{
		{Description: "Wind Energy", YearMonth: 202001, Value: "0.1"},
		{Description: "Wind Energy", YearMonth: 202001, Value: "0.2"},
		{Description: "Wind Energy", YearMonth: 202002, Value: "0.3"},
	}
	pre := []RawRecord{
		{Description: "Wind Energy", YearMonth: 202001, Value: "0.30000000000000004"},
		{Description: "Wind Energy", YearMonth: 202002, Value: "0.3"},
	}

	fromDup, err := Clean(dup, nil)
	require.NoError(t, err)
	fromPre, err := Clean(pre, nil)
	require.NoError(t, err)

	require.Len(t, fromDup, 2)
	require.Len(t, fromPre, 2)
	for i := range fromDup {
		assert.Equal(t, fromPre[i].Source, fromDup[i].Source)
		assert.Equal(t, fromPre[i].Date, fromDup[i].Date)
		assert.InDelta(t, *fromPre[i].GWh, *fromDup[i].GWh, 1e-6)
	}
}

func TestCleanNoSentinelEverNumeric(t *testing.T) {
	raw := []RawRecord{
		{Description: "Solar Energy", YearMonth: 201701, Value: NotAvailable},
		{Description: "Wind Energy", YearMonth: 201701, Value: "0.1"},
		{Description: "Coal Energy", YearMonth: 201702, Value: NotAvailable},
	}

	cleaned, err := Clean(raw, nil)
	require.NoError(t, err)
	for _, r := range cleaned {
		if r.Source == "Wind" {
			assert.NotNil(t, r.GWh)
			continue
		}
		assert.Nil(t, r.GWh, "source %s derived a value from the sentinel", r.Source)
	}
}

func TestCleanErrorTypes(t *testing.T) {
	_, err := Clean([]RawRecord{{Description: "X", YearMonth: 202001, Value: "oops"}}, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*ParseError)))
}
