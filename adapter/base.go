package adapter

import (
	"log"
	"sync"

	"github.com/roffe/slcan"
)

// BaseAdapter carries the channel plumbing shared by all adapters.
type BaseAdapter struct {
	name               string
	cfg                *Config
	sendChan, recvChan chan slcan.Frame

	errOnce sync.Once
	errChan chan error

	evtChan chan Event

	closeOnce sync.Once
	closeChan chan struct{}
}

func NewBaseAdapter(name string, cfg *Config) *BaseAdapter {
	return &BaseAdapter{
		name:      name,
		cfg:       cfg,
		sendChan:  make(chan slcan.Frame, 40),
		recvChan:  make(chan slcan.Frame, 1024),
		errChan:   make(chan error, 1),
		evtChan:   make(chan Event, 100),
		closeChan: make(chan struct{}),
	}
}

// Name returns the adapter name.
func (base *BaseAdapter) Name() string {
	return base.name
}

// Send returns the channel outgoing frames are written to.
func (base *BaseAdapter) Send() chan<- slcan.Frame {
	return base.sendChan
}

// Recv returns the channel received frames are read from.
func (base *BaseAdapter) Recv() <-chan slcan.Frame {
	return base.recvChan
}

// Err returns the fatal error channel. A nil error signals a clean
// close.
func (base *BaseAdapter) Err() <-chan error {
	return base.errChan
}

func (base *BaseAdapter) Event() <-chan Event {
	return base.evtChan
}

func (base *BaseAdapter) Close() {
	base.closeOnce.Do(func() {
		close(base.closeChan)
		select {
		case base.errChan <- nil:
		default:
		}
	})
}

// Fatal reports an error that ends communication.
func (base *BaseAdapter) Fatal(err error) {
	base.errOnce.Do(func() {
		select {
		case base.errChan <- err:
		default:
			log.Printf("error channel full: %v", err)
		}
	})
}

func (base *BaseAdapter) sendEvent(eventType EventType, details string) {
	select {
	case base.evtChan <- Event{Type: eventType, Details: details}:
	default:
		log.Printf("event channel full: %s", details)
	}
}

// Error sends an error event.
func (base *BaseAdapter) Error(err error) {
	base.sendEvent(EventTypeError, err.Error())
}

// Warn sends a warning event.
func (base *BaseAdapter) Warn(warn string) {
	base.sendEvent(EventTypeWarning, warn)
}

// Info sends an info event.
func (base *BaseAdapter) Info(info string) {
	base.sendEvent(EventTypeInfo, info)
}

// Debug sends a debug event.
func (base *BaseAdapter) Debug(debug string) {
	base.sendEvent(EventTypeDebug, debug)
}
