package config

// Default returns the repository defaults applied before any file or
// environment values.
func Default() Config {
	return Config{
		General: General{
			DefaultNamespace: "minecraft",
			FontKey:          "default",
		},
		Editor: Editor{
			PackFormat:  34,
			Description: "Edited with packsmith",
		},
		Paths: Paths{
			DataDir: "~/.local/share/packsmith",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		History: History{
			Enabled: true,
		},
	}
}
