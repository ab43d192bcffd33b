package slcan

import (
	"fmt"
	"strings"
)

// Command is one SLCAN adapter command. Format returns the exact wire
// string, ASCII and CR terminated.
type Command interface {
	Format() string
}

// Setup configures the bus speed. Sent before Open.
type Setup struct {
	Bitrate Bitrate
}

func (s Setup) Format() string {
	return fmt.Sprintf("S%d\r", s.Bitrate.Code())
}

// Open starts bus communication.
type Open struct{}

func (Open) Format() string {
	return "O\r"
}

// Close stops bus communication.
type Close struct{}

func (Close) Format() string {
	return "C\r"
}

// Transmit sends one frame, or requests one for remote frames.
type Transmit struct {
	Frame Frame
}

func (t Transmit) Format() string {
	var out strings.Builder
	switch {
	case t.Frame.IsRemote() && t.Frame.IsExtended():
		out.WriteByte('R')
	case t.Frame.IsRemote():
		out.WriteByte('r')
	case t.Frame.IsExtended():
		out.WriteByte('T')
	default:
		out.WriteByte('t')
	}

	if t.Frame.IsExtended() {
		fmt.Fprintf(&out, "%08X", t.Frame.ID().Raw())
	} else {
		fmt.Fprintf(&out, "%03X", t.Frame.ID().Raw())
	}

	fmt.Fprintf(&out, "%X", t.Frame.Length())

	// Remote frames never carry a data section, whatever their length.
	if t.Frame.IsData() {
		for _, b := range t.Frame.Data() {
			fmt.Fprintf(&out, "%02X", b)
		}
	}

	out.WriteByte(CR)
	return out.String()
}
