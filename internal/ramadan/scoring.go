package ramadan

import "github.com/karam/musabaqa/pkg/entity"

// ComputeScore converts one day's raw counts into points. Each count is
// capped at its settings ceiling before its weight is applied, so a raw
// value can never contribute more than cap*weight. The three terms are
// summed in a fixed order to keep the result reproducible.
func ComputeScore(taraweehRakaat, tahajjudRakaat, quranPages int, settings *entity.GroupSettings) float64 {
	t := float64(capAt(taraweehRakaat, settings.TaraweehCap)) * settings.PointsWeightTaraweeh
	j := float64(capAt(tahajjudRakaat, settings.TahajjudCap)) * settings.PointsWeightTahajjud
	q := float64(capAt(quranPages, settings.QuranPagesCap)) * settings.PointsWeightQuran
	return t + j + q
}

func capAt(raw, cap int) int {
	if raw > cap {
		return cap
	}
	return raw
}
