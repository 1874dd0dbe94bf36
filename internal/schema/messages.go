package schema

// Messages is the ordered conversation history exchanged with the model.
// It is append-only: the driver extends it, nothing rewrites past entries.
// It owns typed append methods so callers never build raw messages by hand.
type Messages struct {
	Messages []Message
}

// NewMessages returns a Messages initialised with the given messages.
// Called with no arguments it returns an empty history ready for use.
func NewMessages(msgs ...Message) Messages {
	if len(msgs) == 0 {
		return Messages{Messages: make([]Message, 0)}
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return Messages{Messages: out}
}

// Add appends a message verbatim. Used for assistant messages returned by the
// backend, which must enter the history exactly as received.
func (mh *Messages) Add(msg Message) {
	mh.Messages = append(mh.Messages, msg)
}

// AddUserText appends a user message with a single text block.
func (mh *Messages) AddUserText(text string) {
	mh.Messages = append(mh.Messages, NewUserMessage(text))
}

// AddToolResults appends the user message carrying one ToolResult block per
// outcome of the preceding assistant turn.
func (mh *Messages) AddToolResults(results []ToolResultBlock) {
	mh.Messages = append(mh.Messages, NewToolResultMessage(results))
}

// Len returns the number of messages in the history.
func (mh *Messages) Len() int { return len(mh.Messages) }

// Clone returns a deep-enough copy of mh with an independent backing slice.
func (mh *Messages) Clone() Messages {
	cloned := make([]Message, len(mh.Messages))
	copy(cloned, mh.Messages)
	return Messages{Messages: cloned}
}
