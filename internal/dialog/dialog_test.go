package dialog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/mpv-context-menu/internal/notice"
	"github.com/atomicstack/mpv-context-menu/internal/proc"
	"github.com/atomicstack/mpv-context-menu/internal/testutil"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"/a.mkv", "/b.mkv", "/c.mkv"}, Normalize("/a.mkv\r\n/b.mkv\r/c.mkv\n\n"))
	assert.Nil(t, Normalize(""))
	assert.Nil(t, Normalize("\n\r\n"))
}

func TestKDialogFileArgs(t *testing.T) {
	args := KDialogArgs("kdialog", KindFile, "/media/", "film.mkv", "4242")
	require.Len(t, args, 9)
	assert.Equal(t, []string{"kdialog", "--attach=4242", "--icon=mpv", "--separate-output", "--multiple",
		"--title=Select Files", "--getopenfilename", "/media/film.mkv"}, args[:8])

	filters := strings.Split(args[8], "\n")
	require.Len(t, filters, 6)
	assert.True(t, strings.HasPrefix(filters[0], "Videos (*.3gp *.asf"))
	assert.Equal(t, "Playlists (*.cue *.pls *.m3u *.m3u8)", filters[3])
	assert.Contains(t, filters[4], "*.wmv *.aac")
	assert.Equal(t, "All Files (*)", filters[5])
}

func TestKDialogURLArgs(t *testing.T) {
	assert.Equal(t, []string{"kdialog", "--title=Open URL", "--inputbox=Enter URL:"},
		KDialogArgs("kdialog", KindURL, ".", "", ""))
}

func TestZenityArgs(t *testing.T) {
	assert.Equal(t, []string{"zenity", "--file-selection", "--filename=/media/", "--multiple",
		"--title=Select Folders", "--directory"}, ZenityArgs("zenity", KindFolder, "/media/"))

	sub := ZenityArgs("zenity", KindSubtitle, "")
	assert.Equal(t, []string{"zenity", "--file-selection", "--filename=", "--title=Select Subtitle",
		"--file-filter=Subtitles | *.ass *.smi *.srt *.ssa *.sub *.txt", "--file-filter=All Files | *"}, sub)

	assert.Equal(t, []string{"zenity", "--entry", "--text=Enter URL:", "--title=Open URL"},
		ZenityArgs("zenity", KindURL, ""))
}

func newLauncher(pref string, props map[string]interface{}) (*Launcher, *testutil.FakeHost, *testutil.Runner) {
	host := testutil.NewFakeHost(props)
	runner := testutil.NewRunner()
	return New(host, runner, Config{Preference: pref}, false), host, runner
}

func TestLaunchWithoutPreference(t *testing.T) {
	l, _, runner := newLauncher("", nil)
	err := l.Launch(context.Background(), KindFile, ModeAdd)
	msg, _, ok := notice.Message(err)
	require.True(t, ok)
	assert.Equal(t, NoPreferenceMessage, msg)
	assert.Empty(t, runner.Requests)
}

func TestAddFilesReplacesThenAppends(t *testing.T) {
	l, host, runner := newLauncher(PickerKDialog, map[string]interface{}{
		"path":              "clips/a.mkv",
		"working-directory": "/home/me",
	})
	runner.Stdout("xdotool", "77\n")
	runner.Stdout("kdialog", "/x/1.mkv\n/x/2.mkv\n")

	require.NoError(t, l.Launch(context.Background(), KindFile, ModeAdd))
	assert.Equal(t, []string{"loadfile /x/1.mkv replace", "loadfile /x/2.mkv append"}, host.Sent())

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "xdotool getwindowfocus", calls[0])
	assert.Contains(t, calls[1], "--attach=77")
	assert.Contains(t, calls[1], "--getopenfilename /home/me/clips/a.mkv")
}

func TestAppendFilesToNonEmptyPlaylist(t *testing.T) {
	l, host, runner := newLauncher(PickerZenity, map[string]interface{}{"playlist-count": 3.0})
	runner.Stdout("zenity", "/x/1.mkv\n/x/2.mkv\n")

	require.NoError(t, l.Launch(context.Background(), KindFile, ModeAppend))
	assert.Equal(t, []string{"loadfile /x/1.mkv append", "loadfile /x/2.mkv append"}, host.Sent())
	assert.Equal(t, []string{"Added 2 file(s) to playlist"}, host.Shown())
}

func TestAppendFoldersToEmptyPlaylist(t *testing.T) {
	l, host, runner := newLauncher(PickerZenity, map[string]interface{}{"playlist-count": 0.0})
	runner.Stdout("zenity", "/a\n/b\n")

	require.NoError(t, l.Launch(context.Background(), KindFolder, ModeAppend))
	assert.Equal(t, []string{"loadfile /a replace", "loadfile /b append"}, host.Sent())
	assert.Equal(t, []string{"Added 2 folder(s) to playlist"}, host.Shown())
}

func TestSubtitleAndAudioSelect(t *testing.T) {
	l, host, runner := newLauncher(PickerZenity, nil)
	runner.Stdout("zenity", "/s.srt\n")
	runner.Stdout("zenity", "/a.flac\n")

	require.NoError(t, l.Launch(context.Background(), KindSubtitle, ModeAdd))
	require.NoError(t, l.Launch(context.Background(), KindAudio, ModeAdd))
	assert.Equal(t, []string{"sub-add /s.srt select", "audio-add /a.flac select"}, host.Sent())
}

func TestOpenURLAndPlaylistReplace(t *testing.T) {
	l, host, runner := newLauncher(PickerZenity, nil)
	runner.Stdout("zenity", "https://example.com/v.mp4\n")
	runner.Stdout("zenity", "/p.m3u\n")

	require.NoError(t, l.Launch(context.Background(), KindURL, ModeOpen))
	require.NoError(t, l.Launch(context.Background(), KindPlaylist, ModeOpen))
	assert.Equal(t, []string{"loadfile https://example.com/v.mp4 replace", "loadfile /p.m3u replace"}, host.Sent())
}

func TestDismissedPickerDoesNothing(t *testing.T) {
	l, host, runner := newLauncher(PickerZenity, nil)
	runner.Script("zenity", proc.Result{Status: 1})

	require.NoError(t, l.Launch(context.Background(), KindFile, ModeAdd))
	assert.Empty(t, host.Sent())
	assert.Empty(t, host.Shown())
}

func TestSandboxedPickersAreWrapped(t *testing.T) {
	host := testutil.NewFakeHost(nil)
	runner := testutil.NewRunner()
	runner.Stdout("zenity", "")
	l := New(host, runner, Config{Preference: PickerZenity}, true)

	require.NoError(t, l.Launch(context.Background(), KindFile, ModeAdd))
	for _, call := range runner.Calls() {
		assert.True(t, strings.HasPrefix(call, "flatpak-spawn --host "), call)
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	names := make(map[string]bool)
	for _, b := range Bindings {
		names[b.Name] = true
	}
	assert.Len(t, names, 9)
	assert.True(t, names["open_playlist_dialog"])
}
