package config

import (
	"strconv"
	"strings"
)

const (
	envConfig     = "MPV_CONTEXT_MENU_CONFIG"
	envSocketPath = "MPV_CONTEXT_MENU_SOCKET"
	envTrace      = "MPV_CONTEXT_MENU_TRACE"
	envLogFile    = "MPV_CONTEXT_MENU_LOG_FILE"
	envBuilder    = "MPV_CONTEXT_MENU_BUILDER"
	envDialog     = "MPV_CONTEXT_MENU_DIALOG"
	envLimit      = "MPV_CONTEXT_MENU_LIMIT"
	envExtensions = "MPV_CONTEXT_MENU_EXTENSIONS"
)

func (c *Config) applyEnv(env map[string]string) {
	c.IPC.Socket = envOrDefault(env, envSocketPath, c.IPC.Socket)
	c.Logging.Trace = envOrBool(env, envTrace, c.Logging.Trace)
	c.Logging.File = envOrDefault(env, envLogFile, c.Logging.File)
	c.Menu.Builder = envOrDefault(env, envBuilder, c.Menu.Builder)
	c.Menu.Limit = envOrInt(env, envLimit, c.Menu.Limit)
	c.Menu.Extensions = envOrDefault(env, envExtensions, c.Menu.Extensions)
	c.Dialogs.Preference = envOrDefault(env, envDialog, c.Dialogs.Preference)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
