package campaign

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/adpulse/internal/compose"
)

func TestEmbeddedSampleComposes(t *testing.T) {
	snap, err := EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Headline, 6)
	require.Equal(t, "Evolução de Impressões", snap.Trend.Title)
	require.Len(t, snap.Trend.Points, 6)
	require.Equal(t, "Jan", snap.Trend.Points[0].Period)
	require.Equal(t, []compose.Group{{Label: "Google Ads", Value: 12000}, {Label: "Facebook Ads", Value: 8000}}, snap.Investment.Groups)
	require.Len(t, snap.Distribution.Slices, 3)
	require.NotEmpty(t, snap.Current)
	require.NotEmpty(t, snap.Previous)

	dash := compose.NewComposer(compose.DefaultFormats("R$")).Compose(snap.DashboardInput(nil))
	require.NoError(t, dash.CardsErr)
	require.NoError(t, dash.Trend.Err)
	require.NoError(t, dash.Bars.Err)
	require.NoError(t, dash.Pie.Err)
	require.Equal(t, "125.3k", dash.Cards[0].Value)
	require.Equal(t, "R$ 1.23", dash.Cards[3].Value)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[trend]\ntitle = \"x\"\ncolour = \"red\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "trend.colour")
}

func TestDecodeMetricWithoutChange(t *testing.T) {
	snap, err := Decode(strings.NewReader("[[metric]]\ntitle = \"Reach\"\nvalue = 10\nunit = \"Count\"\n"))
	require.NoError(t, err)
	require.Nil(t, snap.Headline[0].Change)
	require.Equal(t, compose.UnitCount, snap.Headline[0].Unit)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.toml")
	body := "[[current]]\nplatform = \"Google\"\ncampaign = \"a\"\nspend = 10.0\nclicks = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	snap, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{{Platform: PlatformGoogle, Campaign: "a", Spend: 10, Clicks: 4}}, snap.Current)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.toml")}.Load(context.Background())
	require.Error(t, err)
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EmbeddedSource{}.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewSourceDefaultsToEmbedded(t *testing.T) {
	require.IsType(t, EmbeddedSource{}, NewSource("  "))
}
