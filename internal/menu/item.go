package menu

// Command is what runs when an item is chosen: a literal mpv command line or
// an in-process callback.
type Command struct {
	Line     string
	Callback func()
}

// Run builds a literal command.
func Run(line string) Command {
	return Command{Line: line}
}

// Call builds a callback command.
func Call(fn func()) Command {
	return Command{Callback: fn}
}

// Empty reports whether nothing would run.
func (c Command) Empty() bool {
	return c.Callback == nil && c.Line == ""
}

// Resolved holds the values of an item's fields as of the last
// reconciliation. The transport serializes these rather than the sources.
type Resolved struct {
	Label    string
	State    bool
	AB       ABState
	Disabled bool
}

// Item is one menu entry. Use the constructors; the fields a kind does not
// use stay zero.
type Item struct {
	Kind        Kind
	Label       Value[string]
	Accelerator string
	Target      string
	Command     Command
	State       Value[bool]
	AB          Value[ABState]
	Disabled    Value[bool]
	Repost      bool

	resolved *Resolved
}

// Separator returns a separator line.
func Separator() Item {
	return Item{Kind: KindSeparator}
}

// Cascade returns an item opening the named submenu.
func Cascade(label, target string) Item {
	return Item{Kind: KindCascade, Label: Label(label), Target: target}
}

// Cmd returns a plain command item.
func Cmd(label, accel string, cmd Command) Item {
	return Item{Kind: KindCommand, Label: Label(label), Accelerator: accel, Command: cmd}
}

// Check returns a checkable item.
func Check(label, accel string, cmd Command, state Value[bool]) Item {
	return Item{Kind: KindCheck, Label: Label(label), Accelerator: accel, Command: cmd, State: state}
}

// Radio returns a radio-styled item. Mutual exclusion is not enforced.
func Radio(label, accel string, cmd Command, state Value[bool]) Item {
	return Item{Kind: KindRadio, Label: Label(label), Accelerator: accel, Command: cmd, State: state}
}

// ABToggle returns the three-state A-B loop item.
func ABToggle(label, accel string, cmd Command, state Value[ABState]) Item {
	return Item{Kind: KindABToggle, Label: Label(label), Accelerator: accel, Command: cmd, AB: state}
}

// WithLabel replaces the label, typically with a computed one.
func (it Item) WithLabel(label Value[string]) Item {
	it.Label = label
	return it
}

// WithDisabled sets the disabled predicate.
func (it Item) WithDisabled(disabled Value[bool]) Item {
	it.Disabled = disabled
	return it
}

// Disable marks the item as permanently disabled.
func (it Item) Disable() Item {
	return it.WithDisabled(Bool(true))
}

// Reposting asks repost-capable builders to show the menu again after the
// command runs.
func (it Item) Reposting() Item {
	it.Repost = true
	return it
}

// Resolve evaluates every field into the shadow and returns the updated item.
// The source values are kept so the next reconciliation can evaluate again.
func (it Item) Resolve() Item {
	r := Resolved{
		Label:    it.Label.Resolve(),
		State:    it.State.Resolve(),
		AB:       it.AB.Resolve(),
		Disabled: it.Disabled.Resolve(),
	}
	if it.Kind == KindABToggle && r.AB == "" {
		r.AB = ABOff
	}
	it.resolved = &r
	return it
}

// Snapshot returns the last resolved values. Static fields are read directly
// when the item was never resolved; computed ones report their zero value.
func (it Item) Snapshot() Resolved {
	if it.resolved != nil {
		return *it.resolved
	}
	r := Resolved{}
	if !it.Label.Dynamic() {
		r.Label = it.Label.Resolve()
	}
	if !it.State.Dynamic() {
		r.State = it.State.Resolve()
	}
	if !it.AB.Dynamic() {
		r.AB = it.AB.Resolve()
	}
	if it.Kind == KindABToggle && r.AB == "" {
		r.AB = ABOff
	}
	if !it.Disabled.Dynamic() {
		r.Disabled = it.Disabled.Resolve()
	}
	return r
}
