// Package chat keeps the scripted advisory conversation transcript. A user
// submission is appended immediately; the canned reply is scheduled after a
// fixed delay to mimic a typing assistant. Replies to overlapping
// submissions carry no ordering guarantee.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/owl-lion/access-hub/internal/domain/advisory"
)

// Sender tags who produced a message.
type Sender string

const (
	// SenderUser is the person typing.
	SenderUser Sender = "user"
	// SenderBot is the scripted assistant.
	SenderBot Sender = "bot"
)

// Message is one transcript entry.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Config contains conversation settings.
type Config struct {
	// Context selects the rule table and personalizes the greeting: attach
	// the selected student for the tutor-side bot, leave it zero for the
	// student-side one.
	Context advisory.Context

	// ReplyDelay is the fixed delay before the scripted reply lands.
	ReplyDelay time.Duration

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Conversation is one chat transcript. Safe for the interleaved access that
// delayed replies produce: the scheduler goroutine appends under the same
// mutex the event loop reads under.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	config   Config
	closed   bool

	// replies signals each appended bot message; buffered so a discarded
	// conversation never blocks the scheduler.
	replies chan Message
}

// NewConversation opens a transcript seeded with the bot greeting.
func NewConversation(config Config) *Conversation {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.ReplyDelay <= 0 {
		config.ReplyDelay = time.Second
	}

	c := &Conversation{
		config:  config,
		replies: make(chan Message, 16),
	}
	c.append(Message{
		ID:        uuid.NewString(),
		Text:      advisory.Greeting(config.Context),
		Sender:    SenderBot,
		Timestamp: config.Now(),
	})
	return c
}

// Submit appends the user's utterance immediately and schedules the scripted
// reply after the configured delay. Blank input is ignored the way the form
// ignores an empty send, and a closed conversation accepts nothing; the
// return value reports whether a reply was scheduled, so callers never wait
// on a reply that will not come. Replies to rapid-fire submissions may
// resolve out of submission order; nothing here re-serializes them.
func (c *Conversation) Submit(text string) bool {
	if !appendable(text) {
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.messages = append(c.messages, Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: c.config.Now(),
	})
	c.mu.Unlock()

	time.AfterFunc(c.config.ReplyDelay, func() {
		reply := Message{
			ID:        uuid.NewString(),
			Text:      advisory.Reply(text, c.config.Context),
			Sender:    SenderBot,
			Timestamp: c.config.Now(),
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.messages = append(c.messages, reply)
		c.mu.Unlock()

		select {
		case c.replies <- reply:
		default:
		}
	})
	return true
}

// Messages returns a snapshot of the transcript.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Replies exposes the bot reply signal for event loops that want to render
// as replies land.
func (c *Conversation) Replies() <-chan Message {
	return c.replies
}

// Close discards the conversation. In-flight replies resolve but are thrown
// away, matching a component unmounted mid-flight.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Conversation) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// appendable rejects blank submissions.
func appendable(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
