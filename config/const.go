package config

import "strings"

// AppVersion is the version of the tool, set with -ldflags at build time.
var AppVersion = "dev"

// AppName is the name of the tool.
const AppName = "Slim"

// ConfigName is the base name of the optional project config file (slim.yaml).
const ConfigName = "slim"

// EnvPrefix is the prefix of environment variable overrides (SLIM_ASSETS_DIR, ...).
const EnvPrefix = "SLIM"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
