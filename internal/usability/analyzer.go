package usability

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const SummaryFile = "summary_by_interface.csv"

var (
	ErrMissingColumns = errors.New("csv is missing required columns")
	ErrNoRecords      = errors.New("csv has no records")
)

var requiredColumns = []string{"participant", "interface", "duration_sec", "errors", "satisfaction"}

type Row struct {
	Participant  string
	Interface    string
	DurationSec  float64
	Errors       float64
	Satisfaction float64
}

// Summary aggregates rows for one interface.
type Summary struct {
	Interface       string
	AvgTime         float64
	AvgErrors       float64
	AvgSatisfaction float64
	N               int
}

func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(head))
	for i, name := range head {
		idx[strings.TrimSpace(name)] = i
	}
	missing := lo.Filter(requiredColumns, func(c string, _ int) bool {
		_, ok := idx[c]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		row, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	return rows, nil
}

func parseRow(rec []string, idx map[string]int) (Row, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	number := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		return v, nil
	}

	duration, err := number("duration_sec")
	if err != nil {
		return Row{}, err
	}
	errCount, err := number("errors")
	if err != nil {
		return Row{}, err
	}
	satisfaction, err := number("satisfaction")
	if err != nil {
		return Row{}, err
	}

	return Row{
		Participant:  field("participant"),
		Interface:    field("interface"),
		DurationSec:  duration,
		Errors:       errCount,
		Satisfaction: satisfaction,
	}, nil
}

// Summarize groups rows by interface, ordered by interface name.
func Summarize(rows []Row) []Summary {
	groups := lo.GroupBy(rows, func(r Row) string { return r.Interface })

	names := lo.Keys(groups)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) Summary {
		g := groups[name]
		n := float64(len(g))
		return Summary{
			Interface:       name,
			AvgTime:         lo.SumBy(g, func(r Row) float64 { return r.DurationSec }) / n,
			AvgErrors:       lo.SumBy(g, func(r Row) float64 { return r.Errors }) / n,
			AvgSatisfaction: lo.SumBy(g, func(r Row) float64 { return r.Satisfaction }) / n,
			N:               lo.CountBy(g, func(r Row) bool { return r.Participant != "" }),
		}
	})
}

func WriteSummary(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"interface", "avg_time", "avg_errors", "avg_satisfaction", "n"}); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{
			s.Interface,
			formatFloat(s.AvgTime),
			formatFloat(s.AvgErrors),
			formatFloat(s.AvgSatisfaction),
			strconv.Itoa(s.N),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Analyze reads csvPath, writes the per-interface summary into outDir and
// renders the three comparison charts to w.
func Analyze(csvPath, outDir string, w io.Writer) ([]Summary, error) {
	in, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer in.Close()

	rows, err := ReadRows(in)
	if err != nil {
		return nil, err
	}
	summaries := Summarize(rows)

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	summaryPath := filepath.Join(outDir, SummaryFile)
	out, err := os.Create(summaryPath)
	if err != nil {
		return nil, fmt.Errorf("create summary: %w", err)
	}
	defer out.Close()

	if err = WriteSummary(out, summaries); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	labels := lo.Map(summaries, func(s Summary, _ int) string { return s.Interface })
	charts := []Chart{
		{
			Title:  "Average Completion Time by Interface (s)",
			Labels: labels,
			Values: lo.Map(summaries, func(s Summary, _ int) float64 { return s.AvgTime }),
		},
		{
			Title:  "Average Errors by Interface",
			Labels: labels,
			Values: lo.Map(summaries, func(s Summary, _ int) float64 { return s.AvgErrors }),
		},
		{
			Title:  "Average Satisfaction by Interface (1–5)",
			Labels: labels,
			Values: lo.Map(summaries, func(s Summary, _ int) float64 { return s.AvgSatisfaction }),
			Max:    MaxSatisfaction,
		},
	}
	for _, c := range charts {
		c.Render(w)
	}

	fmt.Fprintln(w, "Analysis complete.")
	fmt.Fprintf(w, "Summary CSV: %s\n", summaryPath)

	return summaries, out.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
