package adapter

import (
	"context"

	"github.com/roffe/slcan"
)

func init() {
	if err := Register(&Info{
		Name:        "loopback",
		Description: "In-process loopback, echoes sent frames back",
		New:         NewLoopback,
	}); err != nil {
		panic(err)
	}
}

// Loopback echoes every sent frame back to the receive channel through
// a full format/parse round trip, so the wire codec path is exercised
// end to end without hardware.
type Loopback struct {
	*BaseAdapter
}

func NewLoopback(cfg *Config) (Adapter, error) {
	return &Loopback{BaseAdapter: NewBaseAdapter("loopback", cfg)}, nil
}

func (lb *Loopback) Open(ctx context.Context) error {
	go lb.run(ctx)
	return nil
}

func (lb *Loopback) Close() error {
	lb.BaseAdapter.Close()
	return nil
}

func (lb *Loopback) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-lb.closeChan:
			return
		case frame := <-lb.sendChan:
			cmd, _, err := slcan.Parse(slcan.Transmit{Frame: frame}.Format())
			if err != nil {
				lb.Error(err)
				continue
			}
			select {
			case lb.recvChan <- cmd.(slcan.Transmit).Frame:
			default:
				lb.Error(ErrDroppedFrame)
			}
		}
	}
}
