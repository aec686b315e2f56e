// Package chart renders the monthly income/expense bar chart as a PNG.
package chart

import (
	"errors"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
)

// Series colors match the dashboard palette: income blue, expense red.
var (
	incomeColor  = drawing.ColorFromHex("3B82F6")
	expenseColor = drawing.ColorFromHex("EF4444")
)

// ErrNoData is returned when there are no buckets to plot. Callers render
// an empty-state message instead of an empty chart.
var ErrNoData = errors.New("no buckets to plot")

// maxBucketValue finds the largest single series value across all buckets,
// the value the y axis must accommodate.
func maxBucketValue(buckets []core.Bucket) core.Money {
	var max int64
	for _, b := range buckets {
		if b.Income.Cents > max {
			max = b.Income.Cents
		}
		if b.Expense.Cents > max {
			max = b.Expense.Cents
		}
	}
	return core.Money{Cents: max}
}

// Render draws the dual-series bar chart for the given buckets into w as a
// PNG. Each bucket contributes an income bar and an expense bar, plotted
// side by side against a y axis scaled by core.YAxisScale.
func Render(w io.Writer, buckets []core.Bucket) error {
	if len(buckets) == 0 {
		return ErrNoData
	}

	scale := core.YAxisScale(maxBucketValue(buckets))

	bars := make([]gochart.Value, 0, len(buckets)*2)
	for _, b := range buckets {
		bars = append(bars, gochart.Value{
			Label: b.Label,
			Value: b.Income.Reais(),
			Style: gochart.Style{FillColor: incomeColor, StrokeColor: incomeColor},
		})
		bars = append(bars, gochart.Value{
			Label: "",
			Value: b.Expense.Reais(),
			Style: gochart.Style{FillColor: expenseColor, StrokeColor: expenseColor},
		})
	}

	ticks := make([]gochart.Tick, len(scale.Ticks))
	for i, t := range scale.Ticks {
		ticks[i] = gochart.Tick{Value: t.Reais(), Label: t.BRL()}
	}

	barChart := gochart.BarChart{
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:      900,
		Height:     360,
		BarWidth:   24,
		BarSpacing: 16,
		Bars:       bars,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: scale.Ceiling.Reais()},
			Ticks: ticks,
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return core.Money{Cents: int64(vf*100 + 0.5)}.BRL()
				}
				return ""
			},
		},
	}

	return barChart.Render(gochart.PNG, w)
}
