package web

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

// Chart colors, kept from the tracker's palette.
const (
	colorBelowTarget = "lightcoral"
	colorAtTarget    = "lightgreen"
	colorTargetLine  = "orange"
	colorAvgLine     = "blue"
	colorDebtLine    = "purple"
)

func statusColor(s sleep.Status) string {
	if s == sleep.StatusBelowTarget {
		return colorBelowTarget
	}
	return colorAtTarget
}

// buildChart assembles the sleep overview: one bar per night colored by
// target status, a dashed line at the target, the 7-night rolling
// average and the 14-night rolling debt.
func buildChart(nights []sleep.Night, target float64) *charts.Bar {
	dates := make([]string, len(nights))
	bars := make([]opts.BarData, len(nights))
	avg := make([]opts.LineData, len(nights))
	debt := make([]opts.LineData, len(nights))

	for i, n := range nights {
		dates[i] = n.Date.Format("2006-01-02")
		bars[i] = opts.BarData{
			Value:     n.SleepHours,
			ItemStyle: &opts.ItemStyle{Color: statusColor(n.Status)},
		}
		avg[i] = opts.LineData{Value: n.Rolling7dSleep}
		debt[i] = opts.LineData{Value: n.Rolling14dDebt}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Sleep Debt Overview",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Sleep Debt Overview"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hours"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(dates).AddSeries("Sleep Hours", bars,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "Target Sleep",
			YAxis: target,
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Color: colorTargetLine, Type: "dashed"},
		}),
	)

	avgLine := charts.NewLine()
	avgLine.SetXAxis(dates).AddSeries("7-Day Avg Sleep", avg,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorAvgLine, Width: 2}),
	)

	debtLine := charts.NewLine()
	debtLine.SetXAxis(dates).AddSeries("14-Day Debt Window", debt,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorDebtLine, Width: 2}),
	)

	bar.Overlap(avgLine, debtLine)
	return bar
}
