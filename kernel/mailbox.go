package kernel

import (
	"runtime"
	"sync/atomic"
)

// MaxMessageBytes is the largest payload a message carries: one boot
// keyboard report.
const MaxMessageBytes = 8

// Message is a fixed-size message envelope.
type Message struct {
	Kind uint8
	Len  uint8
	Seq  uint32
	Data [MaxMessageBytes]byte
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

const (
	// MsgReport carries an encoded boot report.
	MsgReport uint8 = iota + 1
	// MsgLocks carries the lock byte in Data[0].
	MsgLocks
)

const mailboxSlots = 16

// Mailbox is a fixed-size single-producer, single-consumer queue. It never
// allocates and never blocks the producer: a full mailbox drops the message
// and counts it.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	seq   atomic.Uint32
	drops atomic.Uint64
	slots [mailboxSlots]Message
}

// TrySend enqueues msg, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		mb.drops.Add(1)
		return false
	}
	mb.slots[head%mailboxSlots] = msg
	mb.head.Store(head + 1)
	return true
}

// Publish copies payload into a message of the given kind, stamps it with
// the next sequence number and enqueues it. Payloads longer than
// MaxMessageBytes are truncated.
func (mb *Mailbox) Publish(kind uint8, payload []byte) bool {
	var msg Message
	msg.Kind = kind
	msg.Seq = mb.seq.Add(1)
	if len(payload) > MaxMessageBytes {
		payload = payload[:MaxMessageBytes]
	}
	msg.Len = uint8(len(payload))
	copy(msg.Data[:], payload)
	return mb.TrySend(msg)
}

// TryRecv dequeues one message, returning false if empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return Message{}, false
	}

	msg := mb.slots[tail%mailboxSlots]
	mb.tail.Store(tail + 1)
	return msg, true
}

// Recv blocks until one message is available.
func (mb *Mailbox) Recv() Message {
	for {
		msg, ok := mb.TryRecv()
		if ok {
			return msg
		}
		runtime.Gosched()
	}
}

// Drain hands every queued message to fn and returns how many it handled.
func (mb *Mailbox) Drain(fn func(Message)) int {
	n := 0
	for {
		msg, ok := mb.TryRecv()
		if !ok {
			return n
		}
		fn(msg)
		n++
	}
}

// Len returns the number of queued messages.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}

// Drops returns how many messages were lost to a full mailbox.
func (mb *Mailbox) Drops() uint64 {
	return mb.drops.Load()
}
