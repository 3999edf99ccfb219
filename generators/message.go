package generators

// Message is one turn of a conversation. Histories are append-only
// slices of Message, rebuilt from scratch for every solve invocation
// and sent whole on every completion request.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
