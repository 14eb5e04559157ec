package hid

import (
	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
)

// Sink receives a report after every key transition. SendReport must not
// block for long; it runs inside the scan period.
type Sink interface {
	SendReport(r Report)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r Report)

func (f SinkFunc) SendReport(r Report) { f(r) }

// LockSource reports the lock indicators last set by the host: bit 0 num,
// bit 1 caps, bit 2 scroll.
type LockSource interface {
	LockState() uint8
}

// Dispatcher applies key transitions to the modifier mask and the rollover
// and reports the result.
type Dispatcher struct {
	table     *layout.Table
	sink      Sink
	rollover  Rollover
	modifiers uint8
	report    Report
}

// NewDispatcher returns a dispatcher translating through table. A nil sink
// discards reports.
func NewDispatcher(table *layout.Table, sink Sink, policy Policy) *Dispatcher {
	d := &Dispatcher{
		table:    table,
		sink:     sink,
		rollover: NewRollover(policy),
	}
	return d
}

// Press handles a confirmed press of key k.
func (d *Dispatcher) Press(k int) {
	if k < 0 || k >= matrix.NumKeys {
		return
	}
	e := d.table.Lookup(k)
	if e.Modifier {
		d.modifiers |= e.Code
	} else {
		d.rollover.Push(uint8(k))
	}
	d.send()
}

// Release handles a confirmed release of key k. Releasing a key that is not
// held only resends the current report.
func (d *Dispatcher) Release(k int) {
	if k < 0 || k >= matrix.NumKeys {
		return
	}
	e := d.table.Lookup(k)
	if e.Modifier {
		d.modifiers &^= e.Code
	} else {
		d.rollover.Remove(uint8(k))
	}
	d.send()
}

// Handle dispatches one filter event.
func (d *Dispatcher) Handle(ev matrix.Event) {
	switch ev.Edge {
	case matrix.EdgePress:
		d.Press(ev.Key)
	case matrix.EdgeRelease:
		d.Release(ev.Key)
	}
}

func (d *Dispatcher) build() Report {
	r := Report{Modifiers: d.modifiers}
	for i := 0; i < d.rollover.Len(); i++ {
		r.Keys[i] = d.table.Lookup(int(d.rollover.At(i))).Code
	}
	return r
}

func (d *Dispatcher) send() {
	d.report = d.build()
	if d.sink != nil {
		d.sink.SendReport(d.report)
	}
}

// Report returns the last report sent.
func (d *Dispatcher) Report() Report { return d.report }

// Modifiers returns the current modifier mask.
func (d *Dispatcher) Modifiers() uint8 { return d.modifiers }

// Queue returns the held key indices, most recent first, unused slots Empty.
func (d *Dispatcher) Queue() [Capacity]uint8 { return d.rollover.Slots() }

// Reset releases everything without sending a report.
func (d *Dispatcher) Reset() {
	d.rollover.Reset()
	d.modifiers = 0
	d.report = Report{}
}
