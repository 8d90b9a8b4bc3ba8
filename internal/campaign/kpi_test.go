package campaign

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/adpulse/internal/compose"
)

func TestCalculateTotalsAndRatios(t *testing.T) {
	rows := []Row{
		{Platform: PlatformGoogle, Campaign: "a", Spend: 100, Impressions: 10000, Clicks: 200, Conversions: 10, Revenue: 400},
		{Platform: PlatformFacebook, Campaign: "b", Spend: 100, Impressions: 10000, Clicks: 200, Conversions: 10, Revenue: 200},
	}
	k := Calculate(rows)
	require.Equal(t, 200.0, k.Spend)
	require.Equal(t, int64(20000), k.Impressions)
	require.InDelta(t, 2.0, k.CTR, 1e-9)
	require.InDelta(t, 0.5, k.CPC, 1e-9)
	require.InDelta(t, 10.0, k.CPM, 1e-9)
	require.InDelta(t, 5.0, k.ConversionRate, 1e-9)
	require.InDelta(t, 10.0, k.CPA, 1e-9)
	require.InDelta(t, 3.0, k.ROAS, 1e-9)
}

func TestCalculateZeroDenominators(t *testing.T) {
	k := Calculate(nil)
	require.Equal(t, KPIs{}, k)

	k = Calculate([]Row{{Spend: 50}})
	require.Zero(t, k.CTR)
	require.Zero(t, k.CPC)
	require.Zero(t, k.ROAS)
}

func TestGroupByKeepsFirstSeenOrder(t *testing.T) {
	rows := []Row{
		{Platform: PlatformFacebook, Spend: 5},
		{Platform: PlatformGoogle, Spend: 3},
		{Platform: PlatformFacebook, Spend: 2},
	}
	got := GroupBy(rows, ByPlatform, SpendOf)
	require.Equal(t, []compose.Group{{Label: PlatformFacebook, Value: 7}, {Label: PlatformGoogle, Value: 3}}, got)
	require.Empty(t, GroupBy(nil, ByCampaign, ClicksOf))
}

func TestFilterPlatform(t *testing.T) {
	rows := []Row{{Platform: PlatformGoogle, Campaign: "a"}, {Platform: PlatformFacebook, Campaign: "b"}}
	got := FilterPlatform(rows, PlatformFacebook)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].Campaign)
}

func TestPercentChange(t *testing.T) {
	require.Nil(t, PercentChange(0, 10))
	require.Equal(t, 12.5, *PercentChange(100, 112.5))
	require.Equal(t, -2.3, *PercentChange(1000, 977))
	require.Equal(t, 100.0, *PercentChange(-10, 0))
}

func TestKPICardsComposeCleanly(t *testing.T) {
	prev := Calculate([]Row{{Spend: 100, Impressions: 1000, Clicks: 10, Conversions: 1, Revenue: 200}})
	cur := Calculate([]Row{{Spend: 120, Impressions: 1500, Clicks: 12, Conversions: 2, Revenue: 360}})
	raw := KPICards(cur, prev)
	require.Len(t, raw, 6)

	cards, err := compose.NewComposer(compose.DefaultFormats("R$")).BuildMetricCards(raw)
	require.NoError(t, err)
	require.Equal(t, "Impressões", cards[0].Title)
	require.Equal(t, "+50%", cards[0].DeltaText())
	require.Equal(t, "+100%", cards[4].DeltaText())
	require.Equal(t, "3.0x", cards[5].Value)
}
