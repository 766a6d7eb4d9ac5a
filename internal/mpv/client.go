package mpv

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed is returned for requests on a closed connection.
var ErrClosed = errors.New("mpv connection closed")

const eventBuffer = 256

type request struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

type reply struct {
	Data  interface{}
	Error string
}

type message struct {
	Event
	RequestID *int64 `json:"request_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Client is a connection to mpv's IPC socket. Run must be serving for
// requests to complete.
type Client struct {
	conn net.Conn

	writeMu sync.Mutex
	nextID  atomic.Int64

	mu      sync.Mutex
	pending map[int64]chan reply
	waiters map[string][]chan struct{}
	closed  bool

	events chan Event
}

// Dial connects to the socket at path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial mpv socket %s: %w", path, err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn) *Client {
	return &Client{
		conn:    conn,
		pending: make(map[int64]chan reply),
		waiters: make(map[string][]chan struct{}),
		events:  make(chan Event, eventBuffer),
	}
}

// Events delivers notifications in arrival order. The channel closes when
// Run returns.
func (c *Client) Events() <-chan Event {
	return c.events
}

// NextEvent returns a channel closed when the next event called name arrives
// or the connection ends. Waiters are released before the event is queued,
// so they fire even while the consumer of Events is busy. The returned func
// drops the waiter if it has not fired yet; call it once the wait is moot.
func (c *Client) NextEvent(name string) (<-chan struct{}, func()) {
	ch := make(chan struct{})
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	c.waiters[name] = append(c.waiters[name], ch)
	return ch, func() { c.dropWaiter(name, ch) }
}

func (c *Client) dropWaiter(name string, ch chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.waiters[name]
	for i, w := range list {
		if w == ch {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(c.waiters, name)
		return
	}
	c.waiters[name] = list
}

// Run reads replies and events until the connection ends or ctx is done.
// mpv closing the socket is not an error.
func (c *Client) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			c.conn.Close()
		case <-stop:
		}
	}()
	defer c.shutdown()

	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var msg message
		if err := json.Unmarshal(line, &msg); err != nil {
			continue
		}
		if msg.Name != "" {
			if !c.dispatch(ctx, msg.Event) {
				return nil
			}
			continue
		}
		if msg.RequestID != nil {
			c.resolve(*msg.RequestID, reply{Data: msg.Data, Error: msg.Error})
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("read mpv socket: %w", err)
	}
	return nil
}

// Close ends the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) dispatch(ctx context.Context, evt Event) bool {
	c.mu.Lock()
	waiters := c.waiters[evt.Name]
	delete(c.waiters, evt.Name)
	c.mu.Unlock()
	for _, ch := range waiters {
		close(ch)
	}
	select {
	case c.events <- evt:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Client) resolve(id int64, r reply) {
	c.mu.Lock()
	ch, ok := c.pending[id]
	delete(c.pending, id)
	c.mu.Unlock()
	if ok {
		ch <- r
	}
}

func (c *Client) shutdown() {
	c.mu.Lock()
	c.closed = true
	pending := c.pending
	c.pending = make(map[int64]chan reply)
	waiters := c.waiters
	c.waiters = make(map[string][]chan struct{})
	c.mu.Unlock()
	for _, ch := range pending {
		ch <- reply{Error: ErrClosed.Error()}
	}
	for _, list := range waiters {
		for _, ch := range list {
			close(ch)
		}
	}
	close(c.events)
}

// Request sends a raw command and waits for its reply data.
func (c *Client) Request(ctx context.Context, args ...interface{}) (interface{}, error) {
	id := c.nextID.Add(1)
	ch := make(chan reply, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.pending[id] = ch
	c.mu.Unlock()

	if err := c.write(request{Command: args, RequestID: id}); err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, err
	}

	select {
	case r := <-ch:
		return r.Data, replyError(r.Error)
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, ctx.Err()
	}
}

func replyError(status string) error {
	switch status {
	case "success":
		return nil
	case "", ErrClosed.Error():
		return ErrClosed
	case ErrPropertyUnavailable.Error():
		return ErrPropertyUnavailable
	}
	return errors.New(status)
}

func (c *Client) write(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode mpv request: %w", err)
	}
	return c.writeLine(data)
}

func (c *Client) writeLine(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.conn.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write mpv socket: %w", err)
	}
	return nil
}

func stringArgs(args []string) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// Command implements Host.
func (c *Client) Command(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return nil
	}
	_, err := c.Request(ctx, stringArgs(args)...)
	if err != nil {
		return fmt.Errorf("mpv command %s: %w", args[0], err)
	}
	return nil
}

// CommandString implements Host. mpv parses lines that do not start with
// '{' as input.conf commands and sends no reply.
func (c *Client) CommandString(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.ContainsAny(line, "\r\n") || strings.HasPrefix(line, "{") {
		return fmt.Errorf("mpv command line %q: not a single input.conf line", line)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.writeLine([]byte(line))
}

// Property implements Host.
func (c *Client) Property(ctx context.Context, name string) (interface{}, error) {
	v, err := c.Request(ctx, "get_property", name)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	return v, nil
}

// ShowText implements Host.
func (c *Client) ShowText(ctx context.Context, text string, d time.Duration) error {
	return c.Command(ctx, "show-text", text, strconv.FormatInt(d.Milliseconds(), 10))
}

// Observe registers a property observer. Changes arrive as property-change
// events carrying id.
func (c *Client) Observe(ctx context.Context, id int64, name string) error {
	if _, err := c.Request(ctx, "observe_property", id, name); err != nil {
		return fmt.Errorf("observe %s: %w", name, err)
	}
	return nil
}

// KeyBind binds key to cmd in mpv's default input section.
func (c *Client) KeyBind(ctx context.Context, key, cmd string) error {
	if _, err := c.Request(ctx, "keybind", key, cmd); err != nil {
		return fmt.Errorf("keybind %s: %w", key, err)
	}
	return nil
}
