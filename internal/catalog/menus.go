package catalog

import (
	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

func (c *Catalog) openMenu() menu.Menu {
	return menu.List(
		menu.Cmd("File", "Ctrl+F", menu.Run("script-binding add_files_dialog")),
		menu.Cmd("Folder", "Ctrl+G", menu.Run("script-binding add_folder_dialog")),
		menu.Cmd("URL", "", menu.Run("script-binding open_url_dialog")),
	)
}

func (c *Catalog) windowMenu() menu.Menu {
	return menu.List(
		menu.Cascade("Stays on Top", "staysontop_menu"),
		menu.Check("Remove Frame", "", menu.Run("cycle border"), menu.When(c.frameless)).Reposting(),
		menu.Separator(),
		menu.Cmd("Toggle Fullscreen", "F", menu.Run("cycle fullscreen")).Reposting(),
		menu.Cmd("Enter Fullscreen", "", menu.Run(`set fullscreen "yes"`)).Reposting(),
		menu.Cmd("Exit Fullscreen", "Escape", menu.Run(`set fullscreen "no"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("Close", "Ctrl+W", menu.Run("quit")),
	)
}

func (c *Catalog) staysOnTopMenu() menu.Menu {
	return menu.List(
		menu.Cmd("Select Next", "", menu.Run("cycle ontop")).Reposting(),
		menu.Separator(),
		menu.Radio("Off", "", menu.Run(`set ontop "no"`), menu.When(func() bool { return !c.onTop() })).Reposting(),
		menu.Radio("On", "", menu.Run(`set ontop "yes"`), menu.When(c.onTop)).Reposting(),
	)
}

func (c *Catalog) addPlay(set *menu.Set) {
	s := c.steps
	set.Add("play_menu", menu.List(
		menu.Cmd("Play/Pause", "Space", menu.Run("cycle pause")).Reposting(),
		menu.Cmd("Stop", "Ctrl+Space", menu.Run("stop")),
		menu.Separator(),
		menu.Cmd("Previous", "<", menu.Run("playlist-prev")).Reposting(),
		menu.Cmd("Next", ">", menu.Run("playlist-next")).Reposting(),
		menu.Separator(),
		menu.Cascade("Speed", "speed_menu"),
		menu.Cascade("A-B Repeat", "abrepeat_menu"),
		menu.Separator(),
		menu.Cascade("Seek", "seek_menu"),
		menu.Cascade("Title/Edition", "edition_menu").WithDisabled(menu.When(c.noEditions)),
		menu.Cascade("Chapter", "chapter_menu").WithDisabled(menu.When(c.noChapters)),
	))

	set.Add("speed_menu", menu.List(
		menu.Cmd("Reset", "Backspace", menu.Run(`no-osd set speed 1.0 ; show-text "Play Speed - Reset"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.PlaySpeed)+"%", "=", menu.Run("multiply speed "+num(1+s.PlaySpeed/100))).Reposting(),
		menu.Cmd("-"+num(s.PlaySpeed)+"%", "-", menu.Run("multiply speed "+num(1-s.PlaySpeed/100))).Reposting(),
	))

	set.Add("abrepeat_menu", menu.List(
		menu.ABToggle("Set/Clear A-B Loop", "R", menu.Run("ab-loop"), menu.Computed(c.abLoop)).Reposting(),
		menu.Check("Toggle Infinite Loop", "", menu.Run(`cycle-values loop-file "inf" "no"`), menu.When(c.fileLoop)).Reposting(),
	))

	seek := func(label, accel, line string) menu.Item {
		return menu.Cmd(label, accel, menu.Run(line)).Reposting()
	}
	set.Add("seek_menu", menu.List(
		seek("Beginning", "Ctrl+Home", "no-osd seek 0 absolute"),
		menu.Separator(),
		seek("+"+num(s.SeekSmall)+" Sec", "Right", "no-osd seek "+num(s.SeekSmall)),
		seek("-"+num(s.SeekSmall)+" Sec", "Left", "no-osd seek -"+num(s.SeekSmall)),
		seek("+"+num(s.SeekMedium)+" Sec", "Up", "no-osd seek "+num(s.SeekMedium)),
		seek("-"+num(s.SeekMedium)+" Sec", "Down", "no-osd seek -"+num(s.SeekMedium)),
		seek("+"+num(s.SeekLarge)+" Sec", "End", "no-osd seek "+num(s.SeekLarge)),
		seek("-"+num(s.SeekLarge)+" Sec", "Home", "no-osd seek -"+num(s.SeekLarge)),
		menu.Separator(),
		seek("Previous Frame", "Alt+Left", "frame-back-step"),
		seek("Next Frame", "Alt+Right", "frame-step"),
		seek("Next Black Frame", "Alt+b", "script-binding skip_scene"),
		menu.Separator(),
		seek("Previous Subtitle", "", "no-osd sub-seek -1"),
		seek("Current Subtitle", "", "no-osd sub-seek 0"),
		seek("Next Subtitle", "", "no-osd sub-seek 1"),
	))
}

func (c *Catalog) addVideo(set *menu.Set) {
	s := c.steps
	set.Add("video_menu", menu.List(
		menu.Cascade("Track", "vidtrack_menu").WithDisabled(menu.When(func() bool { return len(c.tracks("video")) == 0 })),
		menu.Separator(),
		menu.Cascade("Take Screenshot", "screenshot_menu"),
		menu.Separator(),
		menu.Cascade("Aspect Ratio", "aspect_menu"),
		menu.Cascade("Zoom", "zoom_menu"),
		menu.Cascade("Rotate", "rotate_menu"),
		menu.Cascade("Screen Position", "screenpos_menu"),
		menu.Cascade("Screen Alignment", "screenalign_menu"),
		menu.Separator(),
		menu.Cascade("Deinterlacing", "deint_menu"),
		menu.Cascade("Filter", "filter_menu"),
		menu.Cascade("Adjust Color", "color_menu"),
	))

	set.Add("screenshot_menu", menu.List(
		menu.Cmd("Screenshot", "Ctrl+S", menu.Run("async screenshot")),
		menu.Cmd("Screenshot (No Subs)", "Alt+S", menu.Run("async screenshot video")),
		menu.Cmd("Screenshot (Subs/OSD/Scaled)", "", menu.Run("async screenshot window")),
	))

	aspect := menu.List(
		menu.Cmd("Reset", "Ctrl+Shift+R", menu.Run(`no-osd set video-aspect-override "-1" ; show-text "Video Aspect Ratio - Reset"`)).Reposting(),
		menu.Cmd("Select Next", "", menu.Run(`cycle-values video-aspect-override "4:3" "16:10" "16:9" "1.85:1" "2.35:1" "-1"`)).Reposting(),
		menu.Separator(),
	)
	for _, r := range aspectRatios {
		r := r
		aspect.Append(menu.Radio(r.label, "", menu.Run(`set video-aspect-override "`+r.value+`"`),
			menu.When(func() bool { return c.aspectIs(r.ratio) })).Reposting())
	}
	aspect.Append(
		menu.Separator(),
		menu.Cmd("+"+num(s.VidAspect)+"%", "Ctrl+Shift+A", menu.Run("add video-aspect-override "+num(s.VidAspect/100))).Reposting(),
		menu.Cmd("-"+num(s.VidAspect)+"%", "Ctrl+Shift+D", menu.Run("add video-aspect-override -"+num(s.VidAspect/100))).Reposting(),
	)
	set.Add("aspect_menu", aspect)

	set.Add("zoom_menu", menu.List(
		menu.Cmd("Reset", "Shift+R", menu.Run(`no-osd set panscan 0 ; show-text "Pan/Scan - Reset"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.VidZoom)+"%", "Shift+T", menu.Run("add panscan "+num(s.VidZoom/100))).Reposting(),
		menu.Cmd("-"+num(s.VidZoom)+"%", "Shift+G", menu.Run("add panscan -"+num(s.VidZoom/100))).Reposting(),
	))

	rotate := menu.List(
		menu.Cmd("Reset", "", menu.Run(`set video-rotate "0"`)).Reposting(),
		menu.Cmd("Select Next", "", menu.Run(`cycle-values video-rotate "0" "90" "180" "270"`)).Reposting(),
		menu.Separator(),
	)
	for _, deg := range []int{0, 90, 180, 270} {
		deg := deg
		d := num(float64(deg))
		rotate.Append(menu.Radio(d+"°", "", menu.Run(`set video-rotate "`+d+`"`),
			menu.When(func() bool { return c.intProp("video-rotate", -1) == deg })).Reposting())
	}
	set.Add("rotate_menu", rotate)

	set.Add("screenpos_menu", menu.List(
		menu.Cmd("Reset", "Shift+X", menu.Run(`no-osd set video-pan-x 0 ; no-osd set video-pan-y 0 ; show-text "Video Pan - Reset"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("Horizontally +"+num(s.VidPos)+"%", "Shift+D", menu.Run("add video-pan-x "+num(s.VidPos/100))).Reposting(),
		menu.Cmd("Horizontally -"+num(s.VidPos)+"%", "Shift+A", menu.Run("add video-pan-x -"+num(s.VidPos/100))).Reposting(),
		menu.Separator(),
		menu.Cmd("Vertically +"+num(s.VidPos)+"%", "Shift+S", menu.Run("add video-pan-y -"+num(s.VidPos/100))).Reposting(),
		menu.Cmd("Vertically -"+num(s.VidPos)+"%", "Shift+W", menu.Run("add video-pan-y "+num(s.VidPos/100))).Reposting(),
	))

	// -1 is top/left, 0 center, 1 bottom/right.
	align := func(label, axis string, pos float64) menu.Item {
		prop := "video-align-" + axis
		return menu.Radio(label, "", menu.Run("no-osd set "+prop+" "+num(pos)),
			menu.When(func() bool { return c.floatIs(prop, pos) })).Reposting()
	}
	set.Add("screenalign_menu", menu.List(
		align("Top", "y", -1),
		align("Vertical Center", "y", 0),
		align("Bottom", "y", 1),
		menu.Separator(),
		align("Left", "x", -1),
		align("Horizontal Center", "x", 0),
		align("Right", "x", 1),
	))

	set.Add("deint_menu", menu.List(
		menu.Cmd("Toggle", "Ctrl+D", menu.Run("cycle deinterlace")).Reposting(),
		menu.Cmd("Auto", "", menu.Run(`set deinterlace "auto"`)).Reposting(),
		menu.Separator(),
		menu.Radio("Off", "", menu.Run(`no-osd set deinterlace "no"`), menu.When(func() bool { return c.stringIs("deinterlace", "no") })).Reposting(),
		menu.Radio("On", "", menu.Run(`no-osd set deinterlace "yes"`), menu.When(func() bool { return c.stringIs("deinterlace", "yes") })).Reposting(),
	))

	set.Add("filter_menu", menu.List(
		menu.Check("Flip Vertically", "", menu.Run("no-osd vf toggle vflip"), menu.When(func() bool { return c.filterEnabled("vflip") })).Reposting(),
		menu.Check("Flip Horizontally", "", menu.Run("no-osd vf toggle hflip"), menu.When(func() bool { return c.filterEnabled("hflip") })).Reposting(),
	))

	color := menu.List(
		menu.Cmd("Reset", "O", menu.Run(`no-osd set brightness 0 ; no-osd set contrast 0 ; no-osd set hue 0 ; no-osd set saturation 0 ; show-text "Colors - Reset"`)).Reposting(),
		menu.Separator(),
	)
	for _, adj := range []struct{ label, prop, up, down string }{
		{"Brightness", "brightness", "T", "G"},
		{"Contrast", "contrast", "Y", "H"},
		{"Saturation", "saturation", "U", "J"},
		{"Hue", "hue", "I", "K"},
	} {
		color.Append(
			menu.Cmd(adj.label+" +"+num(s.VidColor)+"%", adj.up, menu.Run("add "+adj.prop+" "+num(s.VidColor))).Reposting(),
			menu.Cmd(adj.label+" -"+num(s.VidColor)+"%", adj.down, menu.Run("add "+adj.prop+" -"+num(s.VidColor))).Reposting(),
		)
	}
	set.Add("color_menu", color)
}

func (c *Catalog) addAudio(set *menu.Set) {
	s := c.steps
	set.Add("audio_menu", menu.List(
		menu.Cascade("Track", "audtrack_menu"),
		menu.Cascade("Sync", "audsync_menu"),
		menu.Separator(),
		menu.Cascade("Volume", "volume_menu"),
		menu.Cascade("Channel Layout", "channel_layout"),
	))

	set.Add("audsync_menu", menu.List(
		menu.Cmd("Reset", `\`, menu.Run(`no-osd set audio-delay 0 ; show-text "Audio Sync - Reset"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.AudSync)+" ms", "]", menu.Run("add audio-delay "+num(s.AudSync/1000))).Reposting(),
		menu.Cmd("-"+num(s.AudSync)+" ms", "[", menu.Run("add audio-delay -"+num(s.AudSync/1000))).Reposting(),
	))

	set.Add("volume_menu", menu.List(
		menu.Check("", "", menu.Run("cycle mute"), menu.When(c.muted)).
			WithLabel(menu.Computed(func() string {
				if c.muted() {
					return "Un-mute"
				}
				return "Mute"
			})).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.AudVol)+"%", "Shift+Up", menu.Run("add volume "+num(s.AudVol))).Reposting(),
		menu.Cmd("-"+num(s.AudVol)+"%", "Shift+Down", menu.Run("add volume -"+num(s.AudVol))).Reposting(),
	))
}

func (c *Catalog) addSubtitle(set *menu.Set) {
	s := c.steps
	set.Add("subtitle_menu", menu.List(
		menu.Cascade("Track", "subtrack_menu"),
		menu.Separator(),
		menu.Cascade("Alignment", "subalign_menu"),
		menu.Cascade("Position", "subpos_menu"),
		menu.Cascade("Scale", "subscale_menu"),
		menu.Separator(),
		menu.Cascade("Sync", "subsync_menu"),
	))

	set.Add("subalign_menu", menu.List(
		menu.Cmd("Select Next", "", menu.Run(`cycle-values sub-align-y "top" "bottom"`)).Reposting(),
		menu.Separator(),
		menu.Radio("Top", "", menu.Run(`set sub-align-y "top"`), menu.When(func() bool { return c.stringIs("sub-align-y", "top") })).Reposting(),
		menu.Radio("Bottom", "", menu.Run(`set sub-align-y "bottom"`), menu.When(func() bool { return c.stringIs("sub-align-y", "bottom") })).Reposting(),
	))

	reset := `no-osd set sub-pos 100 ; no-osd set sub-scale 1 ; show-text "Subtitle Position - Reset"`
	set.Add("subpos_menu", menu.List(
		menu.Cmd("Reset", "Alt+S", menu.Run(reset)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.SubPos)+"%", "S", menu.Run("add sub-pos "+num(s.SubPos))).Reposting(),
		menu.Cmd("-"+num(s.SubPos)+"%", "W", menu.Run("add sub-pos -"+num(s.SubPos))).Reposting(),
		menu.Separator(),
		menu.Radio("Display on Letterbox", "", menu.Run(`set image-subs-video-resolution "no"`),
			menu.When(func() bool { return !c.boolProp("image-subs-video-resolution") })).Reposting(),
		menu.Radio("Display in Video", "", menu.Run(`set image-subs-video-resolution "yes"`),
			menu.When(func() bool { return c.boolProp("image-subs-video-resolution") })).Reposting(),
	))

	set.Add("subscale_menu", menu.List(
		menu.Cmd("Reset", "", menu.Run(reset)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.SubScale)+"%", "Shift+K", menu.Run("add sub-scale "+num(s.SubScale/100))).Reposting(),
		menu.Cmd("-"+num(s.SubScale)+"%", "Shift+J", menu.Run("add sub-scale -"+num(s.SubScale/100))).Reposting(),
	))

	set.Add("subsync_menu", menu.List(
		menu.Cmd("Reset", "Q", menu.Run(`no-osd set sub-delay 0 ; show-text "Subtitle Delay - Reset"`)).Reposting(),
		menu.Separator(),
		menu.Cmd("+"+num(s.SubSync)+" ms", "D", menu.Run("add sub-delay +"+num(s.SubSync/1000))).Reposting(),
		menu.Cmd("-"+num(s.SubSync)+" ms", "A", menu.Run("add sub-delay -"+num(s.SubSync/1000))).Reposting(),
	))
}

func (c *Catalog) addTools(set *menu.Set) {
	set.Add("tools_menu", menu.List(
		menu.Cascade("Playlist", "playlist_menu"),
		menu.Cmd("Find Subtitle (Subit)", "", menu.Run("script-binding subit")),
		menu.Cmd("Playback Information", "Tab", menu.Run("script-binding display-stats-toggle")).Reposting(),
		menu.Cmd("Copy File Path", "", menu.Call(c.copyPath)).WithDisabled(menu.When(func() bool { return c.stringProp("path") == "" })),
	))

	single := menu.When(func() bool { return c.intProp("playlist-count", 0) < 2 })
	set.Add("playlist_menu", menu.List(
		menu.Cmd("Show", "L", menu.Run("script-binding showplaylist")),
		menu.Separator(),
		menu.Cmd("Open", "", menu.Run("script-binding open_playlist_dialog")),
		menu.Cmd("Save", "", menu.Run("script-binding saveplaylist")),
		menu.Cmd("Regenerate", "", menu.Run("script-binding loadfiles")),
		menu.Cmd("Clear", "Shift+L", menu.Run("playlist-clear")),
		menu.Separator(),
		menu.Cmd("Append File", "", menu.Run("script-binding append_files_dialog")),
		menu.Cmd("Append URL", "", menu.Run("script-binding append_url_dialog")),
		menu.Cmd("Remove", "", menu.Run("playlist-remove current")).Reposting(),
		menu.Separator(),
		menu.Cmd("Move Up", "", menu.Call(func() { c.movePlaylist(-1) })).WithDisabled(single).Reposting(),
		menu.Cmd("Move Down", "", menu.Call(func() { c.movePlaylist(1) })).WithDisabled(single).Reposting(),
		menu.Separator(),
		menu.Check("Shuffle", "", menu.Run("cycle shuffle"), menu.When(func() bool { return c.boolProp("shuffle") })).Reposting(),
		menu.Check("Repeat", "", menu.Run(`cycle-values loop-playlist "inf" "no"`), menu.When(c.playlistLoop)).Reposting(),
	))
}
