package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	c.IPC.Socket = strings.TrimSpace(c.IPC.Socket)
	if c.IPC.Socket, err = expandPath(c.IPC.Socket); err != nil {
		return fmt.Errorf("ipc.socket: %w", err)
	}
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	if c.Menu.Extensions, err = expandPath(strings.TrimSpace(c.Menu.Extensions)); err != nil {
		return fmt.Errorf("menu.extensions: %w", err)
	}
	if strings.TrimSpace(c.Menu.ScriptDir) == "" {
		c.Menu.ScriptDir = defaultScriptDir
	}
	if c.Menu.ScriptDir, err = expandPath(c.Menu.ScriptDir); err != nil {
		return fmt.Errorf("menu.script_dir: %w", err)
	}
	if c.Menu.Limit == 0 {
		c.Menu.Limit = defaultLimit
	}
	c.Menu.Builder = strings.TrimSpace(c.Menu.Builder)
	if c.Menu.Builder == "" {
		c.Menu.Builder = defaultBuilder
	}
	c.Dialogs.Preference = strings.ToLower(strings.TrimSpace(c.Dialogs.Preference))
	return c.normalizeBuilders()
}

func (c *Config) normalizeBuilders() error {
	if c.Builders == nil {
		c.Builders = make(map[string]Builder)
	}
	builtin := builtinBuilders()
	for kind, def := range builtin {
		if _, ok := c.Builders[kind]; !ok {
			c.Builders[kind] = def
		}
	}
	for kind, b := range c.Builders {
		def := builtin[kind]
		if b.Interpreter == "" {
			b.Interpreter = def.Interpreter
		}
		if b.Script == "" {
			b.Script = def.Script
		}
		if b.Repost == nil {
			b.Repost = boolPtr(Bool(def.Repost))
		}
		if b.SelfPositioning == nil {
			b.SelfPositioning = boolPtr(Bool(def.SelfPositioning))
		}
		if kind == "tui" {
			if b.Interpreter == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("builders.tui: %w", err)
				}
				b.Interpreter = exe
			}
		} else if b.Script != "" && !filepath.IsAbs(b.Script) && !strings.HasPrefix(b.Script, "~") {
			b.Script = filepath.Join(c.Menu.ScriptDir, b.Script)
		} else if b.Script != "" {
			script, err := expandPath(b.Script)
			if err != nil {
				return fmt.Errorf("builders.%s.script: %w", kind, err)
			}
			b.Script = script
		}
		c.Builders[kind] = b
	}
	return nil
}
