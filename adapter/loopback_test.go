package adapter

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/roffe/slcan"
)

func TestLoopbackRoundTrip(t *testing.T) {
	dev, err := New("loopback", &Config{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := dev.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	id, err := slcan.StandardID(0x456)
	if err != nil {
		t.Fatal(err)
	}
	frame, err := slcan.NewFrame(id, []byte{0x11, 0x22, 0x33})
	if err != nil {
		t.Fatal(err)
	}

	dev.Send() <- frame

	select {
	case got := <-dev.Recv():
		if got.ID().Raw() != 0x456 || !bytes.Equal(got.Data(), []byte{0x11, 0x22, 0x33}) {
			t.Errorf("received %+v, want %+v", got, frame)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for echoed frame")
	}
}

func TestRegistry(t *testing.T) {
	if _, err := New("does-not-exist", &Config{}); err == nil {
		t.Error("expected error for unknown adapter")
	}

	names := ListNames()
	var haveSerial, haveLoopback bool
	for _, name := range names {
		switch name {
		case "slcan":
			haveSerial = true
		case "loopback":
			haveLoopback = true
		}
	}
	if !haveSerial || !haveLoopback {
		t.Errorf("ListNames() = %v, want slcan and loopback", names)
	}
}
