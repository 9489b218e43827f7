package chart

import (
	"bytes"
	"fmt"
	"time"

	"vybevigil/internal/dto"
	"vybevigil/internal/service"
	"vybevigil/pkg/utils"

	"github.com/wcharczuk/go-chart/v2"
)

// Renderer turns Vybe payloads into PNG images for Telegram.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// PriceChart renders the close-price series of OHLCV candles as a time
// series line chart.
func (r *Renderer) PriceChart(title string, points []dto.OHLCVPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no price data to chart")
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = time.Unix(p.Time, 0).UTC()
		yValues[i] = p.Close.Float64()
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontSize: 10,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.4f", v.(float64))
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Close Price",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render price chart: %w", err)
	}
	return buf.Bytes(), nil
}

// HolderChart renders the top entries of an NFT ownership distribution as
// a bar chart, at most ten bars.
func (r *Renderer) HolderChart(distribution []service.OwnerCount) ([]byte, error) {
	if len(distribution) == 0 {
		return nil, fmt.Errorf("no distribution data to chart")
	}

	top := distribution
	if len(top) > 10 {
		top = top[:10]
	}

	values := make([]chart.Value, len(top))
	for i, oc := range top {
		values[i] = chart.Value{
			Label: utils.ShortAddr(oc.Address),
			Value: float64(oc.Count),
		}
	}

	graph := chart.BarChart{
		Title:    "Top NFT Holders",
		Width:    1000,
		Height:   500,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{
			FontSize:            9,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render holder chart: %w", err)
	}
	return buf.Bytes(), nil
}
