package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderNetWorthChart renders the net-worth history as a PNG line chart.
func RenderNetWorthChart(points []NetWorthPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	for i, p := range points {
		xValues[i] = float64(i)
		yValues[i] = p.NetWorth
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month}
	}

	graph := chart.Chart{
		Title:  "Net Worth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Net Worth",
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2563eb"),
					StrokeWidth: 2.5,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMonthlySummaryChart renders income vs expense per month as a PNG
// grouped bar chart, income green and expense red per bucket.
func RenderMonthlySummaryChart(points []MonthlyPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points to render")
	}

	bars := make([]chart.Value, 0, len(points)*2)
	for _, p := range points {
		bars = append(bars,
			chart.Value{Label: p.Month + " in", Value: p.Income, Style: chart.Style{
				FillColor:   drawing.ColorFromHex("16a34a"),
				StrokeColor: drawing.ColorFromHex("16a34a"),
			}},
			chart.Value{Label: p.Month + " out", Value: p.Expense, Style: chart.Style{
				FillColor:   drawing.ColorFromHex("dc2626"),
				StrokeColor: drawing.ColorFromHex("dc2626"),
			}},
		)
	}

	graph := chart.BarChart{
		Title:    "Income vs Expense",
		Width:    900,
		Height:   400,
		BarWidth: 28,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
