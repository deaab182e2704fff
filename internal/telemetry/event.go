package telemetry

import "time"

type EventType string

const (
	EventClick           EventType = "click"
	EventUpgradeBought   EventType = "upgrade_bought"
	EventPathChosen      EventType = "path_chosen"
	EventRandomTriggered EventType = "random_event_triggered"
	EventRandomResolved  EventType = "random_event_resolved"
	EventPrestige        EventType = "prestige"
	EventShopPurchase    EventType = "shop_purchase"
	EventLevelUp         EventType = "level_up"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Subject   string    `json:"subject,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
}
