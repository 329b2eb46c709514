package models

import "time"

// MonitorJournal is one calendar day's monitor recording session. Date is
// the UTC day in "2006-01-02" form. A journal only exists for days that
// have at least one step or heart-rate sample.
type MonitorJournal struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Source string `json:"source,omitempty"`
}

// MonitorStep is a raw cumulative step-count sample. Daily statistics
// derived from these are the intended consumption path; the raw samples are
// rarely needed directly.
type MonitorStep struct {
	Time  time.Time `json:"time"`
	Steps int64     `json:"steps"`
}

// MonitorHeartRate is a raw heart-rate sample in beats per minute.
type MonitorHeartRate struct {
	Time time.Time `json:"time"`
	BPM  int64     `json:"bpm"`
}
