package config

const (
	defaultQuarantineDir          = "~/.local/share/snapmend/quarantine"
	defaultLogDir                 = "~/.local/share/snapmend/logs"
	defaultExiftoolBinary         = "exiftool"
	defaultExiftoolTimeoutSeconds = 60
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			QuarantineDir: defaultQuarantineDir,
			LogDir:        defaultLogDir,
		},
		ExifTool: ExifTool{
			Binary:         defaultExiftoolBinary,
			TimeoutSeconds: defaultExiftoolTimeoutSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
