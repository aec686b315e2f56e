package core

// Scale describes the chart's y axis: a "round" ceiling at or above the
// largest plotted value and a small set of evenly spaced tick values.
type Scale struct {
	Ceiling Money
	Ticks   []Money
}

// scaleLadder lists the fixed ceilings, in centavos, tried in order before
// falling back to the next multiple of R$ 10.000.
var scaleLadder = []struct {
	ceiling int64
	step    int64
}{
	{50_000, 10_000},        // R$ 500, ticks every R$ 100
	{100_000, 20_000},       // R$ 1.000, every R$ 200
	{200_000, 50_000},       // R$ 2.000, every R$ 500
	{500_000, 100_000},      // R$ 5.000, every R$ 1.000
	{1_000_000, 200_000},    // R$ 10.000, every R$ 2.000
	{2_000_000, 500_000},    // R$ 20.000, every R$ 5.000
}

// defaultCeiling applies when there is no data to plot (R$ 5.000).
const defaultCeiling int64 = 500_000

// YAxisScale picks the ceiling and tick set for the given maximum plotted
// value. A zero or negative max yields the default R$ 5.000 scale.
func YAxisScale(max Money) Scale {
	if max.Cents <= 0 {
		return ladderScale(defaultCeiling, 100_000)
	}
	for _, l := range scaleLadder {
		if max.Cents <= l.ceiling {
			return ladderScale(l.ceiling, l.step)
		}
	}
	// Next multiple of R$ 10.000, quartered.
	const unit = 1_000_000
	ceiling := ((max.Cents + unit - 1) / unit) * unit
	return ladderScale(ceiling, ceiling/4)
}

func ladderScale(ceiling, step int64) Scale {
	s := Scale{Ceiling: Money{Cents: ceiling}}
	for v := int64(0); v <= ceiling; v += step {
		s.Ticks = append(s.Ticks, Money{Cents: v})
	}
	return s
}
