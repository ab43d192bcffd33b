package slcan

import "fmt"

// Bitrate is one of the nine nominal CAN bus speeds an SLCAN adapter
// can be configured for. The value doubles as the single-digit wire
// code of the Setup command.
type Bitrate byte

const (
	Bitrate10k Bitrate = iota
	Bitrate20k
	Bitrate50k
	Bitrate100k
	Bitrate125k
	Bitrate250k
	Bitrate500k
	Bitrate800k
	Bitrate1000k
)

// BitrateFromCode maps a wire code 0-8 to its Bitrate.
func BitrateFromCode(code byte) (Bitrate, error) {
	if code > 8 {
		return 0, fmt.Errorf("bitrate code %d: %w", code, ErrInvalidBitrate)
	}
	return Bitrate(code), nil
}

// BitrateFromKbit maps a nominal speed in kbit/s to its Bitrate.
func BitrateFromKbit(kbit int) (Bitrate, error) {
	switch kbit {
	case 10:
		return Bitrate10k, nil
	case 20:
		return Bitrate20k, nil
	case 50:
		return Bitrate50k, nil
	case 100:
		return Bitrate100k, nil
	case 125:
		return Bitrate125k, nil
	case 250:
		return Bitrate250k, nil
	case 500:
		return Bitrate500k, nil
	case 800:
		return Bitrate800k, nil
	case 1000:
		return Bitrate1000k, nil
	}
	return 0, fmt.Errorf("unknown rate: %d kbit/s", kbit)
}

// Code returns the single-digit wire code.
func (b Bitrate) Code() byte {
	return byte(b)
}

func (b Bitrate) String() string {
	switch b {
	case Bitrate10k:
		return "10kbit"
	case Bitrate20k:
		return "20kbit"
	case Bitrate50k:
		return "50kbit"
	case Bitrate100k:
		return "100kbit"
	case Bitrate125k:
		return "125kbit"
	case Bitrate250k:
		return "250kbit"
	case Bitrate500k:
		return "500kbit"
	case Bitrate800k:
		return "800kbit"
	case Bitrate1000k:
		return "1000kbit"
	default:
		return fmt.Sprintf("Bitrate(%d)", byte(b))
	}
}
