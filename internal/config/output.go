package config

// OutputConfig holds settings related to what is printed.
type OutputConfig struct {
	// JSONFormat prints status and perft results as JSON instead of text
	JSONFormat bool

	// StatusOnly prints the position report and exits without playing
	StatusOnly bool

	// ShowBoard draws the board after every move in the play loop
	ShowBoard bool

	// Filename is where OutputFile was opened from, if not stdout
	Filename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
