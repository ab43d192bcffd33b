// Package adapter is the I/O shell around the slcan codec: it owns
// serial ports, line framing and retry policy and exposes CAN traffic
// as frame channels.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/roffe/slcan"
)

var ErrDroppedFrame = errors.New("adapter receive channel full")

type Adapter interface {
	Name() string
	Open(context.Context) error
	Close() error
	Send() chan<- slcan.Frame
	Recv() <-chan slcan.Frame
	Err() <-chan error
	Event() <-chan Event
}

type Info struct {
	Name               string
	Description        string
	RequiresSerialPort bool
	New                func(*Config) (Adapter, error)
}

func (i *Info) String() string {
	return fmt.Sprintf("%s | %s, requires serial port: %v", i.Name, i.Description, i.RequiresSerialPort)
}

type Config struct {
	Debug        bool
	Port         string
	PortBaudrate int
	Bitrate      slcan.Bitrate
}

var adapterMap = make(map[string]*Info)

// Register adds an adapter to the registry. Adapters self-register in
// their init functions.
func Register(info *Info) error {
	if _, found := adapterMap[info.Name]; found {
		return fmt.Errorf("adapter %s already registered", info.Name)
	}
	adapterMap[info.Name] = info
	return nil
}

// New creates a registered adapter by name.
func New(name string, cfg *Config) (Adapter, error) {
	if info, found := adapterMap[name]; found {
		return info.New(cfg)
	}
	return nil, fmt.Errorf("unknown adapter %q", name)
}

// ListNames returns the registered adapter names, sorted.
func ListNames() []string {
	var out []string
	for name := range adapterMap {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// List returns a copy of the registered adapter descriptions.
func List() []Info {
	var out []Info
	for _, info := range adapterMap {
		out = append(out, *info)
	}
	return out
}
