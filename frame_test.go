package slcan

import (
	"bytes"
	"errors"
	"testing"
)

func TestStandardID(t *testing.T) {
	tests := []struct {
		value   uint32
		wantErr bool
	}{
		{0x000, false},
		{0x123, false},
		{0x7FF, false},
		{0x800, true},
		{0xFFF, true},
	}
	for _, tt := range tests {
		id, err := StandardID(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("StandardID(0x%X) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrIdentifierRange) {
				t.Errorf("StandardID(0x%X) error = %v, want ErrIdentifierRange", tt.value, err)
			}
			continue
		}
		if id.Raw() != tt.value || id.Extended() {
			t.Errorf("StandardID(0x%X) = %+v", tt.value, id)
		}
	}
}

func TestExtendedID(t *testing.T) {
	tests := []struct {
		value   uint32
		wantErr bool
	}{
		{0x0000000, false},
		{0x12ABCDEF, false},
		{0x1FFFFFFF, false},
		{0x20000000, true},
	}
	for _, tt := range tests {
		id, err := ExtendedID(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtendedID(0x%X) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if err == nil && (id.Raw() != tt.value || !id.Extended()) {
			t.Errorf("ExtendedID(0x%X) = %+v", tt.value, id)
		}
	}
}

func TestNewFrame(t *testing.T) {
	id, err := StandardID(0x123)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewFrame(id, make([]byte, 9)); !errors.Is(err, ErrDataTooLong) {
		t.Errorf("NewFrame with 9 bytes error = %v, want ErrDataTooLong", err)
	}

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	f, err := NewFrame(id, payload)
	if err != nil {
		t.Fatalf("NewFrame with 8 bytes error = %v", err)
	}
	if f.Length() != 8 {
		t.Errorf("Length() = %d, want 8", f.Length())
	}
	if !bytes.Equal(f.Data(), payload) {
		t.Errorf("Data() = %X, want %X", f.Data(), payload)
	}
	if !f.IsData() || f.IsRemote() || f.IsExtended() {
		t.Errorf("frame flags = data:%v remote:%v extended:%v", f.IsData(), f.IsRemote(), f.IsExtended())
	}

	// Constructed frames do not alias the caller's slice.
	payload[0] = 0xFF
	if f.Data()[0] != 1 {
		t.Error("frame payload aliases the input slice")
	}
}

func TestNewRemoteFrame(t *testing.T) {
	id, err := ExtendedID(0x12ABCDEF)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewRemoteFrame(id, 9); !errors.Is(err, ErrInvalidDLC) {
		t.Errorf("NewRemoteFrame length 9 error = %v, want ErrInvalidDLC", err)
	}
	if _, err := NewRemoteFrame(id, -1); !errors.Is(err, ErrInvalidDLC) {
		t.Errorf("NewRemoteFrame length -1 error = %v, want ErrInvalidDLC", err)
	}

	f, err := NewRemoteFrame(id, 4)
	if err != nil {
		t.Fatalf("NewRemoteFrame error = %v", err)
	}
	if f.Length() != 4 {
		t.Errorf("Length() = %d, want 4", f.Length())
	}
	if !f.IsRemote() || f.IsData() || !f.IsExtended() {
		t.Errorf("frame flags = data:%v remote:%v extended:%v", f.IsData(), f.IsRemote(), f.IsExtended())
	}
}

func TestIdentifierString(t *testing.T) {
	std, _ := StandardID(0x12)
	if got := std.String(); got != "0x012" {
		t.Errorf("standard String() = %q, want %q", got, "0x012")
	}
	ext, _ := ExtendedID(0x12)
	if got := ext.String(); got != "0x00000012" {
		t.Errorf("extended String() = %q, want %q", got, "0x00000012")
	}
}
