package recorder

import "time"

// RunRecord is the outcome of one symbol in one invocation.
type RunRecord struct {
	RunID         string
	Timestamp     time.Time
	Symbol        string
	Name          string
	DisplayModel  string
	Target        string // inky or the PNG path
	Samples       int
	SplitIndex    int
	FirstPrice    float64
	LastPrice     float64
	PercentChange float64
	IsUp          bool
	Error         string
}

// Recorder keeps an optional history of runs. Nothing in the render path
// reads it back.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
