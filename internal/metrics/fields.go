package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrFetch   = "fetch"
	AttrGateway = "gateway"
	AttrCycle   = "cycle"
)

// Cycle kinds recorded by the scheduler.
const (
	CycleSchedule = "schedule"
	CycleGames    = "games"
)
