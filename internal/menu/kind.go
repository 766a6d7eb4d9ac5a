package menu

import "fmt"

// Kind identifies the variant of a menu item.
type Kind int

const (
	KindSeparator Kind = iota
	KindCascade
	KindCommand
	KindCheck
	KindRadio
	KindABToggle
)

var kindNames = map[Kind]string{
	KindSeparator: "separator",
	KindCascade:   "cascade",
	KindCommand:   "command",
	KindCheck:     "checkbutton",
	KindRadio:     "radiobutton",
	KindABToggle:  "ab-button",
}

// String returns the wire name used by the menu builders.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", name)
}

// Selectable reports whether choosing an item of this kind runs a command.
func (k Kind) Selectable() bool {
	return k != KindSeparator && k != KindCascade
}

// ABState is the three-step A-B loop cycle.
type ABState string

const (
	ABOff ABState = "off"
	ABA   ABState = "a"
	ABB   ABState = "b"
)

// ParseABState validates a wire value.
func ParseABState(s string) (ABState, error) {
	switch ABState(s) {
	case ABOff, ABA, ABB:
		return ABState(s), nil
	}
	return "", fmt.Errorf("invalid A-B state %q", s)
}
