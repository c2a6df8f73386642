package ramadan_test

import (
	"testing"

	"github.com/karam/musabaqa/internal/ramadan"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func defaultScoring() *entity.GroupSettings {
	return &entity.GroupSettings{
		NumDays:              30,
		Timezone:             "UTC",
		TaraweehCap:          11,
		TahajjudCap:          11,
		QuranPagesCap:        20,
		PointsWeightTaraweeh: 1,
		PointsWeightTahajjud: 1,
		PointsWeightQuran:    1,
	}
}

func TestComputeScore(t *testing.T) {
	testCases := []struct {
		Desc     string
		Taraweeh int
		Tahajjud int
		Quran    int
		Settings *entity.GroupSettings
		Want     float64
	}{
		{
			Desc: "zero input scores zero",
			Settings: defaultScoring(),
			Want: 0,
		},
		{
			Desc:     "all within caps",
			Taraweeh: 8,
			Tahajjud: 4,
			Quran:    15,
			Settings: defaultScoring(),
			Want:     27,
		},
		{
			Desc:     "quran pages capped at ceiling",
			Quran:    25,
			Settings: defaultScoring(),
			Want:     20,
		},
		{
			Desc:     "capping happens before weighting",
			Taraweeh: 15,
			Settings: func() *entity.GroupSettings {
				s := defaultScoring()
				s.PointsWeightTaraweeh = 2
				return s
			}(),
			Want: 22,
		},
		{
			Desc:     "fractional weights",
			Taraweeh: 10,
			Tahajjud: 2,
			Quran:    4,
			Settings: func() *entity.GroupSettings {
				s := defaultScoring()
				s.PointsWeightTahajjud = 1.5
				s.PointsWeightQuran = 0.5
				return s
			}(),
			Want: 15,
		},
		{
			Desc:     "zero caps silence a category",
			Taraweeh: 11,
			Settings: func() *entity.GroupSettings {
				s := defaultScoring()
				s.TaraweehCap = 0
				return s
			}(),
			Want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := ramadan.ComputeScore(tc.Taraweeh, tc.Tahajjud, tc.Quran, tc.Settings)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestComputeScoreBoundedAndMonotonic(t *testing.T) {
	settings := defaultScoring()
	settings.PointsWeightQuran = 1.5
	upper := float64(settings.TaraweehCap)*settings.PointsWeightTaraweeh +
		float64(settings.TahajjudCap)*settings.PointsWeightTahajjud +
		float64(settings.QuranPagesCap)*settings.PointsWeightQuran

	prev := 0.0
	for q := 0; q <= 40; q++ {
		score := ramadan.ComputeScore(40, 40, q, settings)
		assert.GreaterOrEqual(t, score, prev)
		assert.LessOrEqual(t, score, upper)
		prev = score
	}
}
