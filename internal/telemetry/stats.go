package telemetry

import "time"

// ClickWindow is the sliding window used for the clicks-per-second figure.
const ClickWindow = 5 * time.Second

type Stats struct {
	Period          string  `json:"period"`
	TotalClicks     int     `json:"total_clicks"`
	ClicksPerSecond float64 `json:"clicks_per_second"`
	UpgradesBought  int     `json:"upgrades_bought"`
	EventsTriggered int     `json:"events_triggered"`
	EventsResolved  int     `json:"events_resolved"`
	Prestiges       int     `json:"prestiges"`
	CurrencyClicked float64 `json:"currency_clicked"`
}

// CalculateStats aggregates session stats from recorded events. The click
// rate counts clicks inside ClickWindow ending at now.
func CalculateStats(repo Repository, since, now time.Time) Stats {
	stats := Stats{Period: since.Format("2006-01-02 15:04:05")}

	for _, ev := range repo.GetEvents(since, nil) {
		switch ev.Type {
		case EventClick:
			stats.TotalClicks++
			stats.CurrencyClicked += ev.Amount
			if !ev.Timestamp.Before(now.Add(-ClickWindow)) {
				stats.ClicksPerSecond++
			}
		case EventUpgradeBought:
			stats.UpgradesBought++
		case EventRandomTriggered:
			stats.EventsTriggered++
		case EventRandomResolved:
			stats.EventsResolved++
		case EventPrestige:
			stats.Prestiges++
		}
	}

	stats.ClicksPerSecond /= ClickWindow.Seconds()
	return stats
}
