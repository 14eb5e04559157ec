//go:build linux && !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

// hidgQueue is the number of reports buffered for the writer. The gadget
// driver accepts one report per host poll, so a full queue means the host
// has stopped polling.
const hidgQueue = 16

// hidgDevice writes boot reports to a Linux USB gadget HID function and
// reads the host's LED output reports back. Writes happen on their own
// goroutine; SendReport never waits for the host.
type hidgDevice struct {
	rw  io.ReadWriteCloser
	log Logger

	reports chan [hid.ReportSize]byte
	quit    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	locks  atomic.Uint32
	writes atomic.Uint64
	fails  atomic.Uint64
	drops  atomic.Uint64
}

func openHIDG(path string, log Logger) (*hidgDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("hidg: open %q: %w", path, err)
	}
	return newHIDGDevice(f, log), nil
}

func newHIDGDevice(rw io.ReadWriteCloser, log Logger) *hidgDevice {
	d := &hidgDevice{
		rw:      rw,
		log:     log,
		reports: make(chan [hid.ReportSize]byte, hidgQueue),
		quit:    make(chan struct{}),
	}
	d.wg.Add(2)
	go d.readLEDs()
	go d.writeReports()
	return d
}

func (d *hidgDevice) readLEDs() {
	defer d.wg.Done()
	var buf [8]byte
	for {
		n, err := d.rw.Read(buf[:])
		if err != nil {
			if !errors.Is(err, os.ErrClosed) && !errors.Is(err, io.EOF) {
				d.log.WriteLineString("hidg: read: " + err.Error())
			}
			return
		}
		if n > 0 {
			d.locks.Store(uint32(buf[0] & keycode.LEDMask))
		}
	}
}

func (d *hidgDevice) writeReports() {
	defer d.wg.Done()
	for {
		select {
		case <-d.quit:
			return
		case b := <-d.reports:
			if _, err := d.rw.Write(b[:]); err != nil {
				if d.fails.Add(1) == 1 {
					d.log.WriteLineString("hidg: write: " + err.Error())
				}
				continue
			}
			d.writes.Add(1)
		}
	}
}

// SendReport queues one boot report. The report is dropped when the queue
// is full.
func (d *hidgDevice) SendReport(r hid.Report) {
	select {
	case d.reports <- r.Boot():
	default:
		if d.drops.Add(1) == 1 {
			d.log.WriteLineString("hidg: host not polling, dropping reports")
		}
	}
}

func (d *hidgDevice) LockState() uint8 {
	return uint8(d.locks.Load())
}

// Close stops both goroutines. Closing the device unblocks a pending read
// or write.
func (d *hidgDevice) Close() error {
	var err error
	d.once.Do(func() {
		close(d.quit)
		err = d.rw.Close()
		d.wg.Wait()
	})
	return err
}
