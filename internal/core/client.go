package core

// Client is one live connection as seen by the core layer. ID is the
// connection identity assigned by the gateway; Name is an optional
// pre-bound display name.
type Client struct {
	ID       string
	Name     string
	Commands chan *Command
	Events   chan *Event

	// closed by the hub once the client is unregistered
	done chan struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id, name string) *Client {
	return &Client{
		ID:       id,
		Name:     name,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
		done:     make(chan struct{}),
	}
}
