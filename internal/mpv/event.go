package mpv

// Event names delivered by mpv.
const (
	EventPropertyChange = "property-change"
	EventFileLoaded     = "file-loaded"
	EventEndFile        = "end-file"
	EventClientMessage  = "client-message"
	EventShutdown       = "shutdown"
)

// Event is an asynchronous notification from mpv.
type Event struct {
	Name string `json:"event"`
	// ID is the observer id of a property-change.
	ID int64 `json:"id,omitempty"`
	// Property is the property name of a property-change.
	Property string      `json:"name,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	// Args carries the arguments of a client-message.
	Args   []string `json:"args,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// ScriptMessage returns the message name and arguments of a client-message.
func (e Event) ScriptMessage() (string, []string, bool) {
	if e.Name != EventClientMessage || len(e.Args) == 0 {
		return "", nil, false
	}
	return e.Args[0], e.Args[1:], true
}
