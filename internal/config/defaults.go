package config

const (
	defaultListen         = "127.0.0.1:8001"
	defaultAppDir         = "~/.local/share/periscope"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultBuildCommand   = "npm"
	defaultBuildTimeout   = 180
	defaultSiteTitle      = "Periscope"
	defaultPrimaryASN     = "65000"
	defaultWebTheme       = "light"
	defaultWebBaseURL     = "/"
	defaultCacheTimeout   = 120
	defaultMsgNoInput     = "A target is required."
	defaultMsgInvalid     = "{target} is not a valid target."
	defaultMsgNotFound    = "{target} was not found."
	defaultMsgRequestFail = "Something went wrong. The request could not be completed."
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Listen: defaultListen,
		Paths: Paths{
			AppDir: defaultAppDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		UIBuild: UIBuild{
			Command: defaultBuildCommand,
			Args:    []string{"run", "build"},
			Timeout: defaultBuildTimeout,
		},
		Params: Params{
			SiteTitle:  defaultSiteTitle,
			PrimaryASN: defaultPrimaryASN,
			Messages: Messages{
				NoInput:       defaultMsgNoInput,
				InvalidTarget: defaultMsgInvalid,
				NotFound:      defaultMsgNotFound,
				RequestError:  defaultMsgRequestFail,
			},
			Web: Web{
				Theme:   defaultWebTheme,
				BaseURL: defaultWebBaseURL,
			},
			Cache: CacheParams{
				TimeoutSeconds: defaultCacheTimeout,
				ShowText:       true,
			},
		},
	}
}
