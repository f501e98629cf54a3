package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/recommendation"
)

func TestPlotScoreCurves(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "curves.html")
	profile := recommendation.GenericProfile(models.LevelIntermediario)

	PlotScoreCurves(profile, outPath)

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Expected the chart file to exist: %v", err)
	}
	if !strings.Contains(string(data), "wave size") {
		t.Error("Expected the chart to contain the wave size series")
	}
}
