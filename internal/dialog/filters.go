package dialog

import "strings"

// Filter is a labelled list of file extensions.
type Filter struct {
	Label      string
	Extensions []string
}

var (
	videoFilter = Filter{Label: "Videos", Extensions: []string{
		"3gp", "asf", "avi", "bdm", "bdmv", "clpi", "cpi", "dat", "divx", "dv", "fli", "flv", "ifo",
		"m2t", "m2ts", "m4v", "mkv", "mov", "mp4", "mpeg", "mpg", "mpg2", "mpg4", "mpls", "mts", "nsv",
		"nut", "nuv", "ogg", "ogm", "qt", "rm", "rmvb", "trp", "tp", "ts", "vcd", "vfw", "vob", "webm", "wmv",
	}}
	audioFilter = Filter{Label: "Audio", Extensions: []string{
		"aac", "ac3", "aiff", "ape", "flac", "it", "m4a", "mka", "mod", "mp2", "mp3", "ogg", "pcm",
		"wav", "wma", "xm",
	}}
	imageFilter = Filter{Label: "Images", Extensions: []string{
		"bmp", "gif", "jpeg", "jpg", "png", "tif", "tiff",
	}}
	playlistFilter = Filter{Label: "Playlists", Extensions: []string{
		"cue", "pls", "m3u", "m3u8",
	}}
	subtitleFilter = Filter{Label: "Subtitles", Extensions: []string{
		"ass", "smi", "srt", "ssa", "sub", "txt",
	}}
)

const (
	allFilesKDialog = "All Files (*)"
	allFilesZenity  = "--file-filter=All Files | *"
)

// multimedia merges the video, audio, image and playlist filters.
func multimedia() Filter {
	f := Filter{Label: "All Types"}
	for _, part := range []Filter{videoFilter, audioFilter, imageFilter, playlistFilter} {
		f.Extensions = append(f.Extensions, part.Extensions...)
	}
	return f
}

func (f Filter) patterns() string {
	globs := make([]string, len(f.Extensions))
	for i, ext := range f.Extensions {
		globs[i] = "*." + ext
	}
	return strings.Join(globs, " ")
}

// KDialog renders the filter as "Label (*.a *.b)".
func (f Filter) KDialog() string {
	return f.Label + " (" + f.patterns() + ")"
}

// Zenity renders the filter as a --file-filter flag.
func (f Filter) Zenity() string {
	return "--file-filter=" + f.Label + " | " + f.patterns()
}

// kdialogFilters joins filters into kdialog's newline separated filter
// argument, ending with the catch-all.
func kdialogFilters(filters ...Filter) string {
	parts := make([]string, 0, len(filters)+1)
	for _, f := range filters {
		parts = append(parts, f.KDialog())
	}
	parts = append(parts, allFilesKDialog)
	return strings.Join(parts, "\n")
}

func zenityFilters(filters ...Filter) []string {
	args := make([]string, 0, len(filters)+1)
	for _, f := range filters {
		args = append(args, f.Zenity())
	}
	return append(args, allFilesZenity)
}
