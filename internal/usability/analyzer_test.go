package usability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `timestamp,participant,interface,duration_sec,errors,satisfaction
2026-10-19T10:00:00,U001,CLI,20.5,1,3
2026-10-19T10:05:00,U002,CLI,30.5,3,4
2026-10-19T10:10:00,U001,GUI,10,0,5
2026-10-19T10:15:00,U003,CHATBOT,60,2,4
2026-10-19T10:20:00,U004,CHATBOT,40,0,5
`

func TestReadRows_And_Summarize(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	got := Summarize(rows)

	require.Len(t, got, 3)
	assert.Equal(t, Summary{Interface: "CHATBOT", AvgTime: 50, AvgErrors: 1, AvgSatisfaction: 4.5, N: 2}, got[0])
	assert.Equal(t, Summary{Interface: "CLI", AvgTime: 25.5, AvgErrors: 2, AvgSatisfaction: 3.5, N: 2}, got[1])
	assert.Equal(t, Summary{Interface: "GUI", AvgTime: 10, AvgErrors: 0, AvgSatisfaction: 5, N: 1}, got[2])
}

func TestReadRows_MissingColumns(t *testing.T) {
	_, err := ReadRows(strings.NewReader("participant,interface,errors\nU1,CLI,0\n"))

	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "duration_sec")
	assert.Contains(t, err.Error(), "satisfaction")
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = ReadRows(strings.NewReader("participant,interface,duration_sec,errors,satisfaction\n"))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestReadRows_BadNumber(t *testing.T) {
	_, err := ReadRows(strings.NewReader("participant,interface,duration_sec,errors,satisfaction\nU1,CLI,fast,0,3\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "usability_raw.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o600))
	outDir := filepath.Join(dir, "analysis_outputs")

	var out bytes.Buffer
	summaries, err := Analyze(csvPath, outDir, &out)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)

	data, err := os.ReadFile(filepath.Join(outDir, SummaryFile))
	require.NoError(t, err)
	assert.Equal(t,
		"interface,avg_time,avg_errors,avg_satisfaction,n\n"+
			"CHATBOT,50,1,4.5,2\n"+
			"CLI,25.5,2,3.5,2\n"+
			"GUI,10,0,5,1\n",
		string(data),
	)

	report := out.String()
	assert.Contains(t, report, "Average Completion Time by Interface (s)")
	assert.Contains(t, report, "Average Errors by Interface")
	assert.Contains(t, report, "Average Satisfaction by Interface (1–5)")
	assert.Contains(t, report, "Analysis complete.")
}

func TestChart_Render(t *testing.T) {
	var out bytes.Buffer

	Chart{
		Title:  "Satisfaction",
		Labels: []string{"CLI", "CHATBOT"},
		Values: []float64{2.5, 5},
		Max:    5,
	}.Render(&out)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Satisfaction", lines[0])
	assert.Equal(t, "  CLI     | "+strings.Repeat("#", 20)+" 2.50", lines[1])
	assert.Equal(t, "  CHATBOT | "+strings.Repeat("#", 40)+" 5.00", lines[2])
}
