// Package bus decouples the console front-end from the agent core.
package bus

// InboundMessage is one user prompt on its way to the agent.
type InboundMessage struct {
	Content string
}

// OutboundMessage is agent output on its way to the console. Progress marks
// intermediate text surfaced mid-turn, as opposed to the final reply.
type OutboundMessage struct {
	Content  string
	Progress bool
}

// Bus is the contract between the console and the agent core.
type Bus interface {
	// PublishInbound delivers a prompt from the console to the agent.
	PublishInbound(msg InboundMessage)
	// PublishOutbound delivers agent output to the console.
	PublishOutbound(msg OutboundMessage)
	// InboundChan returns a receive-only channel for the agent to consume.
	InboundChan() <-chan InboundMessage
	// OutboundChan returns a receive-only channel for the console to consume.
	OutboundChan() <-chan OutboundMessage
}

// MessageBus is the default in-process Bus implementation backed by buffered
// Go channels so senders never block on a slow consumer.
type MessageBus struct {
	inbound  chan InboundMessage
	outbound chan OutboundMessage
}

func NewMessageBus(bufSize int) Bus {
	return &MessageBus{
		inbound:  make(chan InboundMessage, bufSize),
		outbound: make(chan OutboundMessage, bufSize),
	}
}

// PublishInbound sends an InboundMessage to the agent.
func (b *MessageBus) PublishInbound(msg InboundMessage) {
	b.inbound <- msg
}

// PublishOutbound sends an OutboundMessage to the console.
func (b *MessageBus) PublishOutbound(msg OutboundMessage) {
	b.outbound <- msg
}

// InboundChan returns a receive-only view of the inbound channel.
func (b *MessageBus) InboundChan() <-chan InboundMessage {
	return b.inbound
}

// OutboundChan returns a receive-only view of the outbound channel.
func (b *MessageBus) OutboundChan() <-chan OutboundMessage {
	return b.outbound
}
