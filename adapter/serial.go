package adapter

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/roffe/slcan"
	"go.bug.st/serial"
	"golang.org/x/sync/errgroup"
)

const bell = 0x07 // adapter NAK for a rejected command

func init() {
	if err := Register(&Info{
		Name:               "slcan",
		Description:        "Lawicel CANUSB / CANable SLCAN adapter",
		RequiresSerialPort: true,
		New:                NewSerial,
	}); err != nil {
		panic(err)
	}
}

// Serial drives an SLCAN adapter over a serial port. Outbound frames
// are formatted as Transmit commands, inbound bytes are split on CR
// and fed to the codec.
type Serial struct {
	*BaseAdapter
	port   serial.Port
	closed bool
}

func NewSerial(cfg *Config) (Adapter, error) {
	return &Serial{BaseAdapter: NewBaseAdapter("slcan", cfg)}, nil
}

func (sa *Serial) Open(ctx context.Context) error {
	mode := &serial.Mode{
		BaudRate: sa.cfg.PortBaudrate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(sa.cfg.Port, mode)
	if err != nil {
		return fmt.Errorf("failed to open com port %q: %w", sa.cfg.Port, err)
	}
	p.SetReadTimeout(4 * time.Millisecond)
	sa.port = p

	p.ResetOutputBuffer()
	p.ResetInputBuffer()

	if err := sa.handshake(ctx); err != nil {
		p.Close()
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sa.sendManager(gctx) })
	g.Go(func() error { return sa.recvManager(gctx) })
	go func() {
		if err := g.Wait(); err != nil {
			sa.Fatal(err)
		}
	}()

	return nil
}

// handshake brings the channel to a known state: close whatever was
// left open, set the bitrate, open the channel.
func (sa *Serial) handshake(ctx context.Context) error {
	cmds := []slcan.Command{
		slcan.Close{},
		slcan.Setup{Bitrate: sa.cfg.Bitrate},
		slcan.Open{},
	}
	return retry.Do(func() error {
		for _, cmd := range cmds {
			if _, err := sa.port.Write([]byte(cmd.Format())); err != nil {
				return fmt.Errorf("handshake write: %w", err)
			}
			time.Sleep(10 * time.Millisecond)
		}
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("handshake retry #%d: %v", n, err)
		}),
		retry.LastErrorOnly(true),
	)
}

func (sa *Serial) Close() error {
	sa.BaseAdapter.Close()
	sa.closed = true
	if sa.port == nil {
		return nil
	}
	sa.port.Write([]byte(slcan.Close{}.Format()))
	time.Sleep(10 * time.Millisecond)
	sa.port.ResetInputBuffer()
	sa.port.ResetOutputBuffer()
	err := sa.port.Close()
	sa.port = nil
	return err
}

func (sa *Serial) sendManager(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sa.closeChan:
			return nil
		case frame := <-sa.sendChan:
			out := slcan.Transmit{Frame: frame}.Format()
			if _, err := sa.port.Write([]byte(out)); err != nil {
				return fmt.Errorf("failed to write to com port: %w", err)
			}
			if sa.cfg.Debug {
				log.Println(">> " + strings.TrimSuffix(out, "\r"))
			}
		}
	}
}

func (sa *Serial) recvManager(ctx context.Context) error {
	buf := make([]byte, 0, 1024)
	readBuf := make([]byte, 32)
	for ctx.Err() == nil {
		n, err := sa.port.Read(readBuf)
		if err != nil {
			if sa.closed {
				return nil
			}
			return fmt.Errorf("failed to read com port: %w", err)
		}
		if n == 0 {
			continue
		}
		buf = sa.dispatch(buf, readBuf[:n])
	}
	return nil
}

// dispatch splits the read bytes on CR, hands complete lines to the
// codec and returns any trailing partial line.
func (sa *Serial) dispatch(buf, in []byte) []byte {
	for _, b := range in {
		if b == bell {
			sa.Warn("command rejected by adapter")
			continue
		}
		if b != slcan.CR {
			buf = append(buf, b)
			continue
		}
		if len(buf) == 0 {
			continue
		}
		sa.dispatchLine(string(buf))
		buf = buf[:0]
	}
	return buf
}

func (sa *Serial) dispatchLine(line string) {
	if sa.cfg.Debug {
		log.Println("<< " + line)
	}
	switch line[0] {
	case 'z', 'Z': // transmit acknowledged
		return
	case 'V', 'N': // version / serial number replies
		sa.Info("adapter reply " + line)
		return
	}
	cmd, _, err := slcan.Parse(line + "\r")
	if err != nil {
		sa.Warn(fmt.Sprintf("unparsable line %q: %v", line, err))
		return
	}
	transmit, ok := cmd.(slcan.Transmit)
	if !ok {
		sa.Warn(fmt.Sprintf("unexpected command %q from adapter", line))
		return
	}
	select {
	case sa.recvChan <- transmit.Frame:
	default:
		sa.Error(ErrDroppedFrame)
	}
}
