package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sunnerberg/heattally/internal/domain"
)

// Chart produces a PNG bar chart of song totals in ranked order.
func Chart(placements []domain.Placement) ([]byte, error) {
	if len(placements) == 0 {
		return nil, fmt.Errorf("no songs to chart")
	}

	bars := make([]chart.Value, 0, len(placements))
	for _, p := range placements {
		bars = append(bars, chart.Value{
			Value: float64(p.Total),
			Label: p.Song,
		})
	}

	graph := chart.BarChart{
		Title:    "Heat totals",
		Width:    900,
		Height:   450,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
