package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Bryanads/thecheckAPI/models/forecast"
	"github.com/Bryanads/thecheckAPI/recommendation"
)

// PlotScoreCurves generates an HTML file charting the wave size, wind
// and tide score curves for a resolved profile. Useful for eyeballing
// a preference set before saving it.
func PlotScoreCurves(profile recommendation.Profile, outPath string) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Score Curves",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Suitability score curves",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "score",
			Min:  -100,
			Max:  100,
		}),
	)

	const steps = 80
	maxHeight := profile.MaxWaveHeight * 1.5

	var labels []string
	var sizePoints, windPoints, tidePoints []opts.LineData
	for i := 0; i <= steps; i++ {
		x := maxHeight * float64(i) / steps
		labels = append(labels, fmt.Sprintf("%.2f", x))

		sizePoints = append(sizePoints, opts.LineData{Value: recommendation.WaveSizeScore(
			x, profile.MinWaveHeight, profile.IdealWaveHeight, profile.MaxWaveHeight)})

		windSpeed := profile.MaxWindSpeed * 1.5 * float64(i) / steps
		windPoints = append(windPoints, opts.LineData{Value: recommendation.WindScore(
			windSpeed, profile.IdealWindDirection, profile.IdealWindDirection,
			profile.IdealWindSpeed, profile.MaxWindSpeed)})

		tideHeight := profile.IdealTideHeight * 3 * float64(i) / steps
		tidePoints = append(tidePoints, opts.LineData{Value: recommendation.TideScore(
			tideHeight, profile.IdealTideHeight, forecast.TidePhaseUnknown, profile.IdealTideType)})
	}

	line.SetXAxis(labels).
		AddSeries("wave size", sizePoints).
		AddSeries("offshore wind", windPoints).
		AddSeries("tide height", tidePoints)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Score curves generated: " + outPath)
}
