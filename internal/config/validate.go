package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	var problems []string
	if c.Menu.Limit < 0 {
		problems = append(problems, fmt.Sprintf("menu.limit must be >= 0 (got %d)", c.Menu.Limit))
	}
	switch c.Dialogs.Preference {
	case "", "kdialog", "zenity":
	default:
		problems = append(problems, fmt.Sprintf("dialogs.preference must be kdialog or zenity (got %q)", c.Dialogs.Preference))
	}
	if _, ok := c.Builders[c.Menu.Builder]; !ok {
		problems = append(problems, fmt.Sprintf("menu.builder %q has no [builders.%s] entry", c.Menu.Builder, c.Menu.Builder))
	}
	for _, kind := range c.BuilderKinds() {
		if strings.TrimSpace(c.Builders[kind].Script) == "" {
			problems = append(problems, fmt.Sprintf("builders.%s.script is required", kind))
		}
	}
	steps := map[string]float64{
		"play_speed": c.Steps.PlaySpeed, "seek_small": c.Steps.SeekSmall, "seek_medium": c.Steps.SeekMedium,
		"seek_large": c.Steps.SeekLarge, "vid_aspect": c.Steps.VidAspect, "vid_zoom": c.Steps.VidZoom,
		"vid_pos": c.Steps.VidPos, "vid_color": c.Steps.VidColor, "aud_sync": c.Steps.AudSync,
		"aud_vol": c.Steps.AudVol, "sub_pos": c.Steps.SubPos, "sub_scale": c.Steps.SubScale,
		"sub_sync": c.Steps.SubSync,
	}
	for _, name := range sortedKeys(steps) {
		if steps[name] < 0 {
			problems = append(problems, fmt.Sprintf("steps.%s must be >= 0 (got %g)", name, steps[name]))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
