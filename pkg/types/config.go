package types

// DefaultLogoBaseURL is the image host that station logo paths are relative to.
const DefaultLogoBaseURL = "https://manager.uber.radio/static/uploads/station/"

// ConversionConfig holds settings for a playlist conversion run.
type ConversionConfig struct {
	// InputDir is the directory holding station directory documents (*.json).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the directory receiving generated playlists (*.m3u).
	// It is created if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// LogoBaseURL is prepended to each station's logo path.
	LogoBaseURL string `json:"logo_base_url" yaml:"logo_base_url" mapstructure:"logo_base_url"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	// MetricsPath, when set, receives Prometheus text-format metrics for the run.
	MetricsPath string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`

	// HistoryDB, when set, is the SQLite database that records each run.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty" mapstructure:"history_db"`

	// Strict makes any failed file, or an unreadable input directory,
	// fail the command.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}
