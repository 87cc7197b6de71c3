// Package charts renders the post-run statistics page. All state is scoped
// to one StatsPage per run; nothing here is process-wide.
package charts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"brigade/internal/models"
	"brigade/internal/store"
)

const (
	// StatsPageFileName is the entry point of the rendered output.
	StatsPageFileName = "index.html"

	revenueByItemFileName = "csv/revenue_by_item.csv"

	timeAxisLayout = "02-Jan 15:04"
)

// StatsPage renders one run's statistics into an output directory.
type StatsPage struct {
	kitchenName        string
	maxConcurrentItems int
	outputDir          string
}

// NewStatsPage creates a stats page renderer for the given run
func NewStatsPage(kitchenName string, maxConcurrentItems int, outputDir string) *StatsPage {
	return &StatsPage{
		kitchenName:        kitchenName,
		maxConcurrentItems: maxConcurrentItems,
		outputDir:          outputDir,
	}
}

// Render reduces the completed store and writes the charts page and the
// revenue CSV under the output directory.
func (p *StatsPage) Render(completed *store.InMemoryStore, rejectedCount int) error {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := p.writeRevenueByItemCSV(completed.RevenueByItem()); err != nil {
		return err
	}

	capacity := "INF"
	if p.maxConcurrentItems > 0 {
		capacity = fmt.Sprintf("%d", p.maxConcurrentItems)
	}
	summary := fmt.Sprintf("Kitchen: %s | Max concurrent items: %s | Total revenue: $%.2f | Completed orders: %d | Rejected orders: %d",
		p.kitchenName, capacity, float64(completed.TotalRevenue())/100.0, completed.CurrentNumOrders(), rejectedCount)

	page := components.NewPage()
	page.PageTitle = "Food System Stats"
	page.AddCharts(
		p.ordersByPriceChart(completed.OrdersByPrice(), summary),
		p.ordersByPendingTimeChart(completed.OrdersByPendingDuration()),
		p.orderStatesOverTimeChart(completed.OrderStateCountsByTime()),
		p.revenueByServiceChart(completed.RevenueByService()),
	)

	pagePath := filepath.Join(p.outputDir, StatsPageFileName)
	f, err := os.Create(pagePath)
	if err != nil {
		return fmt.Errorf("creating stats page: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering stats page: %w", err)
	}
	return nil
}

func (p *StatsPage) ordersByPriceChart(entries []store.PriceEntry, subtitle string) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Orders by Total Price", Subtitle: subtitle}),
	)
	xs := make([]int, 0, len(entries))
	data := make([]opts.LineData, 0, len(entries))
	for i, entry := range entries {
		xs = append(xs, i+1)
		data = append(data, opts.LineData{Value: float64(entry.PriceCents) / 100.0})
	}
	line.SetXAxis(xs).AddSeries("Order Price ($)", data)
	return line
}

func (p *StatsPage) ordersByPendingTimeChart(entries []store.PendingEntry) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Time Order is in Pending State (minutes)"}),
	)
	xs := make([]int, 0, len(entries))
	data := make([]opts.LineData, 0, len(entries))
	for i, entry := range entries {
		xs = append(xs, i+1)
		data = append(data, opts.LineData{Value: entry.PendingMinutes})
	}
	line.SetXAxis(xs).AddSeries("Pending State Duration (minutes)", data)
	return line
}

func (p *StatsPage) orderStatesOverTimeChart(rows []store.StateCountRow) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Order States Over Time"}),
	)
	xs := make([]string, 0, len(rows))
	series := map[models.OrderState][]opts.LineData{
		models.OrderStateCreated:    nil,
		models.OrderStateProcessing: nil,
		models.OrderStateComplete:   nil,
	}
	for _, row := range rows {
		xs = append(xs, row.Time.Format(timeAxisLayout))
		for state := range series {
			series[state] = append(series[state], opts.LineData{Value: row.Counts[state]})
		}
	}
	line.SetXAxis(xs).
		AddSeries("Number of Orders Pending", series[models.OrderStateCreated]).
		AddSeries("Number of Orders in Processing", series[models.OrderStateProcessing]).
		AddSeries("Number of Orders Completed", series[models.OrderStateComplete])
	return line
}

func (p *StatsPage) revenueByServiceChart(revenueByService map[string]int) components.Charter {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Revenue by Service"}),
	)
	services := make([]string, 0, len(revenueByService))
	for service := range revenueByService {
		services = append(services, service)
	}
	sort.Strings(services)
	data := make([]opts.PieData, 0, len(services))
	for _, service := range services {
		data = append(data, opts.PieData{
			Name:  service,
			Value: float64(revenueByService[service]) / 100.0,
		})
	}
	pie.AddSeries("Revenue by Service", data)
	return pie
}

// writeRevenueByItemCSV saves the raw per-item revenue table
func (p *StatsPage) writeRevenueByItemCSV(revenueByItem map[string]int) error {
	path := filepath.Join(p.outputDir, revenueByItemFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating csv directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	items := make([]string, 0, len(revenueByItem))
	for item := range revenueByItem {
		items = append(items, item)
	}
	sort.Strings(items)

	w := csv.NewWriter(f)
	for _, item := range items {
		dollars := fmt.Sprintf("%.2f", float64(revenueByItem[item])/100.0)
		if err := w.Write([]string{item, dollars}); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
