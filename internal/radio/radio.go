// Package radio broadcasts handoff packets over a low-bandwidth serial
// radio link using github.com/tarm/goserial, the same way a serial-attached
// GNSS receiver driver opens a port, except this transport carries
// 100-byte handoff frames outbound instead of receiver bytes inbound.
package radio

import (
	"io"

	"github.com/pkg/errors"
	serial "github.com/tarm/goserial"

	"github.com/xbfeng/tbspgo/handoff"
)

// SerialBroadcaster writes each handoff packet as one frame to a serial
// radio modem. It holds no buffering of its own: a handoff packet is small
// enough (100 bytes) to be handed across a single-producer-single-consumer
// queue by value, and this broadcaster is the single consumer at the far
// end of that queue.
type SerialBroadcaster struct {
	port io.ReadWriteCloser
}

// OpenSerialBroadcaster opens the named serial device at baud.
func OpenSerialBroadcaster(device string, baud int) (*SerialBroadcaster, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "opening radio device %q", device)
	}
	return &SerialBroadcaster{port: port}, nil
}

// Broadcast serialises pkt and writes it as a single frame.
func (b *SerialBroadcaster) Broadcast(pkt handoff.Packet) error {
	var buf [handoff.Size]byte
	handoff.Serialize(pkt, buf[:])
	_, err := b.port.Write(buf[:])
	return errors.Wrap(err, "writing handoff frame")
}

// Close releases the underlying serial port.
func (b *SerialBroadcaster) Close() error {
	return b.port.Close()
}
