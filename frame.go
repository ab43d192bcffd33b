package slcan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	maxStandardID = 0x7FF
	maxExtendedID = 0x1FFFFFFF
)

// Identifier is a CAN bus identifier, standard (11 bit) or extended
// (29 bit). The zero value is the standard identifier 0x000.
type Identifier struct {
	value    uint32
	extended bool
}

// StandardID returns an 11-bit identifier.
func StandardID(value uint32) (Identifier, error) {
	if value > maxStandardID {
		return Identifier{}, fmt.Errorf("standard identifier 0x%X: %w", value, ErrIdentifierRange)
	}
	return Identifier{value: value}, nil
}

// ExtendedID returns a 29-bit identifier.
func ExtendedID(value uint32) (Identifier, error) {
	if value > maxExtendedID {
		return Identifier{}, fmt.Errorf("extended identifier 0x%X: %w", value, ErrIdentifierRange)
	}
	return Identifier{value: value, extended: true}, nil
}

// Raw returns the numeric identifier value.
func (id Identifier) Raw() uint32 {
	return id.value
}

// Extended reports whether the identifier is 29 bit.
func (id Identifier) Extended() bool {
	return id.extended
}

func (id Identifier) String() string {
	if id.extended {
		return fmt.Sprintf("0x%08X", id.value)
	}
	return fmt.Sprintf("0x%03X", id.value)
}

// Frame is one CAN bus frame. Payload storage is a fixed 8 byte
// buffer with a separate length, mirroring the hardware frame; a Frame
// is immutable after construction.
type Frame struct {
	id     Identifier
	remote bool
	dlc    uint8
	data   [8]byte
}

// NewFrame creates a data frame carrying up to 8 bytes of payload.
func NewFrame(id Identifier, data []byte) (Frame, error) {
	if len(data) > 8 {
		return Frame{}, fmt.Errorf("%d byte payload: %w", len(data), ErrDataTooLong)
	}
	f := Frame{id: id, dlc: uint8(len(data))}
	copy(f.data[:], data)
	return f, nil
}

// NewRemoteFrame creates a remote request frame. The length is carried
// on the wire but no payload is.
func NewRemoteFrame(id Identifier, length int) (Frame, error) {
	if length < 0 || length > 8 {
		return Frame{}, fmt.Errorf("remote frame length %d: %w", length, ErrInvalidDLC)
	}
	return Frame{id: id, remote: true, dlc: uint8(length)}, nil
}

// ID returns the frame identifier.
func (f Frame) ID() Identifier {
	return f.id
}

// Length returns the declared length (DLC).
func (f Frame) Length() int {
	return int(f.dlc)
}

// Data returns the first Length bytes of payload. Meaningful for data
// frames only.
func (f Frame) Data() []byte {
	return f.data[:f.dlc]
}

// IsExtended reports whether the identifier is 29 bit.
func (f Frame) IsExtended() bool {
	return f.id.extended
}

// IsRemote reports whether the frame is a remote request.
func (f Frame) IsRemote() bool {
	return f.remote
}

// IsData reports whether the frame carries data.
func (f Frame) IsData() bool {
	return !f.remote
}

var (
	yellow = color.New(color.FgHiBlue).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
)

func (f Frame) String() string {
	var out strings.Builder
	if f.remote {
		out.WriteString("<r> || ")
	} else {
		out.WriteString("<d> || ")
	}
	out.WriteString(f.id.String() + " || ")
	out.WriteString(strconv.Itoa(f.Length()) + " || ")
	out.WriteString(fmt.Sprintf("%-23s", hexView(f.Data())))
	out.WriteString(" || ")
	out.WriteString(onlyPrintable(f.Data()))
	return out.String()
}

// ColorString is String with the identifier and ASCII view colorized
// for terminal monitors.
func (f Frame) ColorString() string {
	var out strings.Builder
	if f.remote {
		out.WriteString("<r> || ")
	} else {
		out.WriteString("<d> || ")
	}
	out.WriteString(green("%s", f.id.String()) + " || ")
	out.WriteString(strconv.Itoa(f.Length()) + " || ")
	out.WriteString(fmt.Sprintf("%-23s", hexView(f.Data())))
	out.WriteString(" || ")
	out.WriteString(yellow("%s", onlyPrintable(f.Data())))
	return out.String()
}

func hexView(data []byte) string {
	var out strings.Builder
	for i, b := range data {
		out.WriteString(fmt.Sprintf("%02X", b))
		if i != len(data)-1 {
			out.WriteString(" ")
		}
	}
	return out.String()
}

func onlyPrintable(data []byte) string {
	var out strings.Builder
	for _, b := range data {
		if b < 32 || b > 127 {
			out.WriteString("·")
		} else {
			out.WriteByte(b)
		}
	}
	return out.String()
}
