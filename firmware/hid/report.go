// Package hid turns key transitions into USB HID boot keyboard reports.
package hid

import (
	"fmt"
	"strings"
)

// ReportSize is the length of an encoded boot keyboard report.
const ReportSize = 8

// Report is the state sent to the host: a modifier byte and up to six
// usages, most recent first. Unused slots are zero.
type Report struct {
	Modifiers uint8
	Keys      [Capacity]uint8
}

// Boot encodes r as a boot protocol report: modifiers, reserved, six keys.
func (r Report) Boot() [ReportSize]byte {
	var b [ReportSize]byte
	b[0] = r.Modifiers
	copy(b[2:], r.Keys[:])
	return b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Report) MarshalBinary() ([]byte, error) {
	b := r.Boot()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) != ReportSize {
		return fmt.Errorf("hid: report length %d, want %d", len(data), ReportSize)
	}
	r.Modifiers = data[0]
	copy(r.Keys[:], data[2:])
	return nil
}

// Contains reports whether usage is held in r.
func (r Report) Contains(usage uint8) bool {
	if usage == 0 {
		return false
	}
	for _, k := range r.Keys {
		if k == usage {
			return true
		}
	}
	return false
}

// Empty reports whether nothing is held.
func (r Report) Empty() bool {
	return r == Report{}
}

func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mod=%02x keys=[", r.Modifiers)
	for i, k := range r.Keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", k)
	}
	sb.WriteByte(']')
	return sb.String()
}
