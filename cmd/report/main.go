// Command report renders charts from the audit database: one scatter of
// authentication outcomes and one bar chart of daily operation volume.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Jagruthi1003/Verifying-Image-Authenticity/audit"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {
	dbPath := flag.String("db", "", "path to the audit database")
	outDir := flag.String("out", "./report", "directory for the generated HTML charts")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("Provide the audit database with -db")
	}

	store, err := audit.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open audit database: %v", err)
	}
	defer store.Close()

	count, err := store.CountOperations()
	if err != nil {
		log.Fatalf("Failed to count operations: %v", err)
	}
	log.Printf("Loaded %d operations from %s", count, *dbPath)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	scatterPath := filepath.Join(*outDir, "auth_percentage.html")
	if err := generateAuthScatter(store, scatterPath); err != nil {
		log.Printf("Failed to generate authentication scatter: %v", err)
	} else {
		log.Printf("Generated: %s", scatterPath)
	}

	dailyPath := filepath.Join(*outDir, "daily_operations.html")
	if err := generateDailyBars(store, dailyPath); err != nil {
		log.Printf("Failed to generate daily bars: %v", err)
	} else {
		log.Printf("Generated: %s", dailyPath)
	}
}

// generateAuthScatter plots every authenticate outcome, authentic and
// tampered uploads as separate series.
func generateAuthScatter(store *audit.DB, outputPath string) error {
	points, err := store.AuthPoints()
	if err != nil {
		return err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Authentication outcomes",
			Subtitle: "Digest bit match percentage per authenticated upload",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Operation",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Match (%)",
			Type: "value",
			Min:  0,
			Max:  100,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	var authentic, tampered []opts.ScatterData
	for i, p := range points {
		data := opts.ScatterData{
			Value:      []any{i + 1, p.Percentage},
			Symbol:     "circle",
			SymbolSize: 10,
			Name:       p.CreatedAt.Format(time.RFC3339),
		}
		if p.Authentic {
			authentic = append(authentic, data)
		} else {
			tampered = append(tampered, data)
		}
	}
	scatter.AddSeries("authentic", authentic)
	scatter.AddSeries("tampered", tampered)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Printf("Authentication outcomes: %d total, %d authentic, %d tampered",
		len(points), len(authentic), len(tampered))

	return scatter.Render(f)
}

// generateDailyBars charts per-day operation counts from the daily_stats view.
func generateDailyBars(store *audit.DB, outputPath string) error {
	stats, err := store.DailyStats()
	if err != nil {
		return err
	}

	// Rows arrive ordered by day then op; collapse them into one column
	// per day.
	type dayTotals struct {
		secure       int
		authenticate int
	}
	totals := make(map[string]*dayTotals)
	var days []string
	for _, s := range stats {
		t, ok := totals[s.Day]
		if !ok {
			t = &dayTotals{}
			totals[s.Day] = t
			days = append(days, s.Day)
		}
		switch s.Op {
		case audit.OpSecure:
			t.secure = s.Total
		case audit.OpAuthenticate:
			t.authenticate = s.Total
		}
	}

	var secureData, authData []opts.BarData
	for _, day := range days {
		secureData = append(secureData, opts.BarData{
			Value: totals[day].secure,
			Name:  fmt.Sprintf("%s: %d secured", day, totals[day].secure),
		})
		authData = append(authData, opts.BarData{
			Value: totals[day].authenticate,
			Name:  fmt.Sprintf("%s: %d authenticated", day, totals[day].authenticate),
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily operations",
			Subtitle: "Secure and authenticate volume per day",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Day",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Operations",
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
	)
	bar.SetXAxis(days)
	bar.AddSeries("secure", secureData)
	bar.AddSeries("authenticate", authData)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}
