package trace

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks records every tick.
	TraceLevelTicks TraceLevel = "ticks"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTicks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TickTrace collects tick records during a run.
type TickTrace struct {
	Level TraceLevel   `json:"level"`
	Ticks []TickRecord `json:"ticks"`
}

// NewTickTrace creates a TickTrace ready for recording.
func NewTickTrace(level TraceLevel) *TickTrace {
	if level == "" {
		level = TraceLevelNone
	}
	return &TickTrace{
		Level: level,
		Ticks: make([]TickRecord, 0),
	}
}

// Enabled reports whether records are kept. Safe on nil.
func (tt *TickTrace) Enabled() bool {
	return tt != nil && tt.Level == TraceLevelTicks
}

// Record appends a tick record. No-op when tracing is disabled.
func (tt *TickTrace) Record(record TickRecord) {
	if !tt.Enabled() {
		return
	}
	tt.Ticks = append(tt.Ticks, record)
}
