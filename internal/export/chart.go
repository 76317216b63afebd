package export

import (
	"bytes"
	"errors"

	"github.com/ledgerlight/backend/internal/report"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Default raster size for embedded chart images.
const (
	chartWidthPx  = 1024
	chartHeightPx = 512
)

var errNoChartData = errors.New("there is no data to render a chart from")

// ChartRenderer rasterizes chart data into an image. The PDF renderer
// treats it as an external collaborator so document generation stays
// decoupled from the charting library; a nil renderer means the chart
// section is omitted.
type ChartRenderer interface {
	RenderPNG(data report.ChartData, width, height int) ([]byte, error)
}

// BarChartRenderer renders chart data as a PNG bar chart.
type BarChartRenderer struct{}

func (BarChartRenderer) RenderPNG(data report.ChartData, width, height int) ([]byte, error) {
	if len(data.Labels) == 0 || len(data.Datasets) == 0 {
		return nil, errNoChartData
	}

	values := data.Datasets[0].Values
	bars := make([]chart.Value, len(data.Labels))
	for i, label := range data.Labels {
		bars[i] = chart.Value{
			Label: label,
			Value: values[i],
		}
	}

	graph := chart.BarChart{
		Width:    width,
		Height:   height,
		BarWidth: max(10, width/(2*len(bars))),
		Bars:     bars,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
