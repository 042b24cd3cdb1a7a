package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

func TestClassifyRSI_Boundaries(t *testing.T) {
	cases := []struct {
		rsi  float64
		want string
	}{
		{70, LabelNeutral},
		{70.0001, LabelOverbought},
		{30, LabelNeutral},
		{29.9999, LabelOversold},
		{50, LabelNeutral},
		{85, LabelOverbought},
		{12, LabelOversold},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyRSI(tc.rsi), "rsi=%v", tc.rsi)
	}
}

func TestClassifyMACD_ZeroIsBearish(t *testing.T) {
	// Zero counts as Bearish; the boundary is inclusive on the bearish side
	assert.Equal(t, LabelBearish, ClassifyMACD(-0.01))
	assert.Equal(t, LabelBearish, ClassifyMACD(0))
	assert.Equal(t, LabelBullish, ClassifyMACD(0.01))
}

func TestClassifyBBWidth_Boundaries(t *testing.T) {
	assert.Equal(t, LabelStable, ClassifyBBWidth(0.1))
	assert.Equal(t, LabelHighVolatility, ClassifyBBWidth(0.1001))
	assert.Equal(t, LabelStable, ClassifyBBWidth(0.02))
}

func TestSummarizeIndicators(t *testing.T) {
	summary := SummarizeIndicators(models.IndicatorSet{
		RSI:        75.5,
		Volatility: 0.03,
		MACDHist:   -1.2,
		BBWidth:    0.15,
	})

	assert.Equal(t, 75.5, summary.RSI)
	assert.Equal(t, LabelOverbought, summary.RSILabel)
	assert.Equal(t, LabelBearish, summary.MACDLabel)
	assert.Equal(t, LabelHighVolatility, summary.VolLabel)
	assert.Equal(t, 0.03, summary.Volatility)
}
