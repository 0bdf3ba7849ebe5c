package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CAPI_LOG_LEVEL")
	if logLevel == "" {
		if f := GetFile(); f.LogLevel != "" {
			return LogLevel(f.LogLevel)
		}
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CAPI_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("CAPI_LISTEN")
	if listen == "" {
		listen = GetFile().Listen
	}
	return listen
}

func GetPort() int {
	port := os.Getenv("CAPI_PORT")
	if port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			return p
		}
	}
	if f := GetFile(); f.Port != 0 {
		return f.Port
	}
	return 3000
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CAPI_DB_FOLDER")
	if dbFolderPath == "" {
		if f := GetFile(); f.DBFolder != "" {
			return f.DBFolder
		}
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CAPI_LOG_FOLDER")
	if logFolderPath == "" {
		if f := GetFile(); f.LogFolder != "" {
			return f.LogFolder
		}
		logFolderPath = "log"
	}
	return logFolderPath
}
