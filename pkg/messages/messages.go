// Package messages collects the feedback a form run produces. A Bag keeps
// messages in the order they were reported, grouped loosely by the field they
// belong to.
package messages

import (
	"strings"
)

// Message is one piece of feedback tied to a form field. Kind carries the
// rule identifier that produced it, when one applies.
type Message struct {
	Field string
	Text  string
	Kind  string
}

// Bag is an ordered collection of messages.
type Bag struct {
	items []Message
}

// NewBag returns a bag seeded with the given messages.
func NewBag(items ...Message) *Bag {
	b := &Bag{}
	b.AppendMany(items)
	return b
}

// Append adds a message to the end of the bag.
func (b *Bag) Append(m Message) {
	b.items = append(b.items, m)
}

// AppendText adds a plain text message for a field.
func (b *Bag) AppendText(field, text string) {
	b.Append(Message{Field: field, Text: text})
}

// AppendMany adds messages preserving their order.
func (b *Bag) AppendMany(items []Message) {
	b.items = append(b.items, items...)
}

// Merge appends every message from other. A nil other is a no-op.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Len returns the number of messages held.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// IsEmpty reports whether the bag holds no messages.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}

// Messages returns a copy of the held messages in order.
func (b *Bag) Messages() []Message {
	if b == nil {
		return nil
	}
	out := make([]Message, len(b.items))
	copy(out, b.items)
	return out
}

// Filter returns the messages recorded for one field, in order.
func (b *Bag) Filter(field string) []Message {
	if b == nil {
		return nil
	}
	var out []Message
	for _, m := range b.items {
		if m.Field == field {
			out = append(out, m)
		}
	}
	return out
}

// Has reports whether any message was recorded for the field.
func (b *Bag) Has(field string) bool {
	if b == nil {
		return false
	}
	for _, m := range b.items {
		if m.Field == field {
			return true
		}
	}
	return false
}

// Texts returns the message texts trimmed, de-duplicated and in their
// original order. Blank texts are dropped.
func (b *Bag) Texts() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.items))
	seen := make(map[string]struct{}, len(b.items))
	for _, m := range b.items {
		trimmed := strings.TrimSpace(m.Text)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
