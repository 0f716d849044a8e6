package orthology

// Config holds configuration for the orthology mapping checker.
type Config struct {
	// ReportPrefix is the object prefix published reports are stored under.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// HistoryLimit is the default number of runs listed by the history endpoint.
	HistoryLimit int `mapstructure:"history_limit" default:"20"`
}
