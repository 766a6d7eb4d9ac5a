// Package ui contains the Bubble Tea program behind the terminal menu
// builder. It receives the same JSON envelope as the toolkit builders and
// prints the same one-line selection, so mpv can drive it through
// "--menu-builder=tui" without knowing it runs in a terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Navigation helpers (navigation.go) manage the stack of open menus,
//     cursor movement, cascade depth, and reopening the submenus named by the
//     envelope's menu indexes. Filter helpers (input.go) keep text entry out of
//     the key dispatch.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks the
//     decoded entries, filtering, and viewport calculations. Separators and
//     disabled entries never take the cursor.
//   - The Model records the selection when an entry is picked or the menu is
//     dismissed and quits; Run hands that selection back to the caller.
package ui
