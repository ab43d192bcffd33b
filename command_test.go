package slcan

import "testing"

func TestFormatSetup(t *testing.T) {
	tests := []struct {
		bitrate Bitrate
		want    string
	}{
		{Bitrate10k, "S0\r"},
		{Bitrate20k, "S1\r"},
		{Bitrate50k, "S2\r"},
		{Bitrate100k, "S3\r"},
		{Bitrate125k, "S4\r"},
		{Bitrate250k, "S5\r"},
		{Bitrate500k, "S6\r"},
		{Bitrate800k, "S7\r"},
		{Bitrate1000k, "S8\r"},
	}
	for _, tt := range tests {
		if got := (Setup{Bitrate: tt.bitrate}).Format(); got != tt.want {
			t.Errorf("Setup{%s}.Format() = %q, want %q", tt.bitrate, got, tt.want)
		}
	}
}

func TestFormatOpenClose(t *testing.T) {
	if got := (Open{}).Format(); got != "O\r" {
		t.Errorf("Open{}.Format() = %q, want %q", got, "O\r")
	}
	if got := (Close{}).Format(); got != "C\r" {
		t.Errorf("Close{}.Format() = %q, want %q", got, "C\r")
	}
}

func mustStandard(t *testing.T, value uint32) Identifier {
	t.Helper()
	id, err := StandardID(value)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func mustExtended(t *testing.T, value uint32) Identifier {
	t.Helper()
	id, err := ExtendedID(value)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func mustFrame(t *testing.T, id Identifier, data []byte) Frame {
	t.Helper()
	f, err := NewFrame(id, data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustRemote(t *testing.T, id Identifier, length int) Frame {
	t.Helper()
	f, err := NewRemoteFrame(id, length)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFormatTransmit(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			name:  "standard empty",
			frame: mustFrame(t, mustStandard(t, 0x123), nil),
			want:  "t1230\r",
		},
		{
			name:  "standard data",
			frame: mustFrame(t, mustStandard(t, 0x456), []byte{0x11, 0x22, 0x33}),
			want:  "t4563112233\r",
		},
		{
			name:  "extended data",
			frame: mustFrame(t, mustExtended(t, 0x12ABCDEF), []byte{0xAA, 0x55}),
			want:  "T12ABCDEF2AA55\r",
		},
		{
			name:  "standard remote",
			frame: mustRemote(t, mustStandard(t, 0x123), 0),
			want:  "r1230\r",
		},
		{
			name:  "standard remote with length",
			frame: mustRemote(t, mustStandard(t, 0x123), 8),
			want:  "r1238\r",
		},
		{
			name:  "extended remote",
			frame: mustRemote(t, mustExtended(t, 0x1FFFFFFF), 2),
			want:  "R1FFFFFFF2\r",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Transmit{Frame: tt.frame}).Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
