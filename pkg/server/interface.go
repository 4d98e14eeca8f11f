/*
Package server implements msgpack IPC for prefix suggestion lookups.

Clients write msgpack maps to stdin and read msgpack maps from stdout, one
response per request. Logging goes to stderr so it never corrupts the stream.

# IPC

On start the server writes a status message:

	{"status": "ready"}

A completion request carries an id, a prefix and an optional limit:

	{"id": "req_001", "p": "ca", "l": 24}

The response lists every suggestion under the prefix, labelled with the word
that carried it and its position:

	{"id": "req_001", "s": [{"w": "car", "s": "vehicle", "r": 1}, {"w": "cat", "s": "feline", "r": 2}], "c": 2, "t": 12}

An empty "s" means no suggestions were found; showing that to a user is the
client's job.

Index requests grow or inspect the index between queries:

	{"id": "idx_001", "action": "add_text", "text": "the cat sat"}
	{"id": "idx_002", "action": "add_pair", "word": "dog", "suggestion": "canine"}
	{"id": "idx_003", "action": "words", "p": "ca"}
	{"id": "idx_004", "action": "stats"}

Config requests adjust server limits without restart:

	{"id": "cfg_001", "action": "set_config", "max_limit": 10}

Requests are handled one at a time, so an insert never overlaps a lookup.
*/
package server

// Request is the envelope every incoming message is decoded into.
// Which fields matter depends on Action; an empty Action means completion.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`

	// completion
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Unique bool   `msgpack:"u,omitempty"`

	// index
	Text       string `msgpack:"text,omitempty"`
	Word       string `msgpack:"word,omitempty"`
	Suggestion string `msgpack:"suggestion,omitempty"`

	// config
	MaxLimit     *int  `msgpack:"max_limit,omitempty"`
	MinPrefix    *int  `msgpack:"min_prefix,omitempty"`
	MaxPrefix    *int  `msgpack:"max_prefix,omitempty"`
	EnableFilter *bool `msgpack:"enable_filter,omitempty"`
}

// CompletionSuggestion - one suggestion with the word it belongs to
type CompletionSuggestion struct {
	Word       string `msgpack:"w"`
	Suggestion string `msgpack:"s"`
	Rank       int    `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// IndexResponse - index operation response
type IndexResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Error  string         `msgpack:"error,omitempty"`
	Added  int            `msgpack:"added,omitempty"`
	Words  []string       `msgpack:"words,omitempty"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Error     string `msgpack:"error,omitempty"`
	MaxLimit  int    `msgpack:"max_limit"`
	MinPrefix int    `msgpack:"min_prefix"`
	MaxPrefix int    `msgpack:"max_prefix"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatusMessage is sent once the server is ready
type StatusMessage struct {
	Status string `msgpack:"status"`
}
