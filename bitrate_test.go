package slcan

import (
	"errors"
	"testing"
)

func TestBitrateFromCode(t *testing.T) {
	for code := byte(0); code <= 8; code++ {
		bitrate, err := BitrateFromCode(code)
		if err != nil {
			t.Errorf("BitrateFromCode(%d) error = %v", code, err)
			continue
		}
		if bitrate.Code() != code {
			t.Errorf("BitrateFromCode(%d).Code() = %d", code, bitrate.Code())
		}
	}
	if _, err := BitrateFromCode(9); !errors.Is(err, ErrInvalidBitrate) {
		t.Errorf("BitrateFromCode(9) error = %v, want ErrInvalidBitrate", err)
	}
}

func TestBitrateFromKbit(t *testing.T) {
	tests := []struct {
		kbit int
		want Bitrate
	}{
		{10, Bitrate10k},
		{20, Bitrate20k},
		{50, Bitrate50k},
		{100, Bitrate100k},
		{125, Bitrate125k},
		{250, Bitrate250k},
		{500, Bitrate500k},
		{800, Bitrate800k},
		{1000, Bitrate1000k},
	}
	for _, tt := range tests {
		got, err := BitrateFromKbit(tt.kbit)
		if err != nil {
			t.Errorf("BitrateFromKbit(%d) error = %v", tt.kbit, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BitrateFromKbit(%d) = %v, want %v", tt.kbit, got, tt.want)
		}
	}
	if _, err := BitrateFromKbit(33); err == nil {
		t.Error("BitrateFromKbit(33) expected error")
	}
}
