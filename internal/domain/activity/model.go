package activity

// MaxEntries bounds the activity log; the oldest entry is evicted when
// a new one would exceed it.
const MaxEntries = 10

// Entry is a row in the recent-activity feed. Time is a display string
// and Icon is a rendering hint for the presentation layer.
type Entry struct {
	ID      int    `json:"id"`
	Action  string `json:"action"`
	Details string `json:"details"`
	Time    string `json:"time"`
	Icon    string `json:"icon"`
}
