package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration with every value commented out, either to stdout or to diststage.toml in the project directory."
	MsgExample = `  diststage gen-config          # Output to stdout
  diststage gen-config -w       # Write to ./diststage.toml
  diststage gen-config -w -d /path/to/project`
)
