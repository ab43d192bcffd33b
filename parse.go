package slcan

import (
	"encoding/hex"
	"strconv"
)

// Parse consumes one command from the front of input and returns it
// together with the unconsumed remainder. Setup, Open, Close and
// Transmit are tried in that order; the four grammars are
// prefix-disjoint so the first byte decides the variant.
func Parse(input string) (Command, string, error) {
	if len(input) == 0 {
		return nil, "", &ParseError{Field: "command", Expected: `one of "SOCtTrR"`, Found: "", Err: ErrUnexpectedEOF}
	}
	switch input[0] {
	case 'S':
		cmd, rest, err := ParseSetup(input)
		if err != nil {
			return nil, "", err
		}
		return cmd, rest, nil
	case 'O':
		cmd, rest, err := ParseOpen(input)
		if err != nil {
			return nil, "", err
		}
		return cmd, rest, nil
	case 'C':
		cmd, rest, err := ParseClose(input)
		if err != nil {
			return nil, "", err
		}
		return cmd, rest, nil
	case 't', 'T', 'r', 'R':
		cmd, rest, err := ParseTransmit(input)
		if err != nil {
			return nil, "", err
		}
		return cmd, rest, nil
	}
	return nil, "", &ParseError{Field: "command", Expected: `one of "SOCtTrR"`, Found: input[:1], Err: ErrUnknownCommand}
}

// ParseSetup parses a bitrate setup command, "S" followed by a digit
// run and CR. Only the codes "0" through "8" are valid.
func ParseSetup(input string) (Setup, string, error) {
	rest, err := tag(input, "S", "setup")
	if err != nil {
		return Setup{}, "", err
	}

	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return Setup{}, "", &ParseError{Field: "bitrate", Expected: "decimal digit", Found: head(rest, 1)}
	}
	code := rest[:n]

	rest, err = tag(rest[n:], "\r", "terminator")
	if err != nil {
		return Setup{}, "", err
	}

	if len(code) != 1 || code[0] > '8' {
		return Setup{}, "", &ParseError{Field: "bitrate", Expected: `code "0" through "8"`, Found: code, Err: ErrInvalidBitrate}
	}
	bitrate, err := BitrateFromCode(code[0] - '0')
	if err != nil {
		return Setup{}, "", err
	}
	return Setup{Bitrate: bitrate}, rest, nil
}

// ParseOpen parses the literal open command "O\r".
func ParseOpen(input string) (Open, string, error) {
	rest, err := tag(input, "O\r", "open")
	if err != nil {
		return Open{}, "", err
	}
	return Open{}, rest, nil
}

// ParseClose parses the literal close command "C\r".
func ParseClose(input string) (Close, string, error) {
	rest, err := tag(input, "C\r", "close")
	if err != nil {
		return Close{}, "", err
	}
	return Close{}, rest, nil
}

// ParseTransmit parses a frame transmission. The leading byte selects
// identifier width and frame kind, then come the fixed-width hex
// identifier, a single hex DLC digit, the data section for data frames
// and the CR terminator.
func ParseTransmit(input string) (Transmit, string, error) {
	if len(input) == 0 {
		return Transmit{}, "", &ParseError{Field: "frame kind", Expected: `one of "tTrR"`, Found: "", Err: ErrUnexpectedEOF}
	}

	var extended, remote bool
	switch input[0] {
	case 't':
	case 'T':
		extended = true
	case 'r':
		remote = true
	case 'R':
		extended, remote = true, true
	default:
		return Transmit{}, "", &ParseError{Field: "frame kind", Expected: `one of "tTrR"`, Found: input[:1]}
	}
	rest := input[1:]

	width := 3
	if extended {
		width = 8
	}
	raw, rest, err := hexField(rest, width, "identifier")
	if err != nil {
		return Transmit{}, "", err
	}

	var id Identifier
	if extended {
		id, err = ExtendedID(raw)
	} else {
		id, err = StandardID(raw)
	}
	if err != nil {
		return Transmit{}, "", err
	}

	dlc, rest, err := hexField(rest, 1, "length")
	if err != nil {
		return Transmit{}, "", err
	}
	if dlc > 8 {
		return Transmit{}, "", &ParseError{Field: "length", Expected: "0 through 8", Found: strconv.FormatUint(uint64(dlc), 16), Err: ErrInvalidDLC}
	}

	var frame Frame
	if remote {
		frame, err = NewRemoteFrame(id, int(dlc))
	} else {
		var data []byte
		if dlc > 0 {
			var field string
			field, rest, err = take(rest, int(dlc)*2, "data")
			if err != nil {
				return Transmit{}, "", err
			}
			data, err = hex.DecodeString(field)
			if err != nil {
				return Transmit{}, "", &ParseError{Field: "data", Expected: "hex digits", Found: field}
			}
		}
		frame, err = NewFrame(id, data)
	}
	if err != nil {
		return Transmit{}, "", err
	}

	rest, err = tag(rest, "\r", "terminator")
	if err != nil {
		return Transmit{}, "", err
	}
	return Transmit{Frame: frame}, rest, nil
}

// tag consumes the literal lit from the front of input.
func tag(input, lit, field string) (string, error) {
	if len(input) < len(lit) {
		return "", &ParseError{Field: field, Expected: strconv.Quote(lit), Found: input, Err: ErrUnexpectedEOF}
	}
	if input[:len(lit)] != lit {
		return "", &ParseError{Field: field, Expected: strconv.Quote(lit), Found: input[:len(lit)]}
	}
	return input[len(lit):], nil
}

// take consumes exactly n bytes from the front of input.
func take(input string, n int, field string) (string, string, error) {
	if len(input) < n {
		return "", "", &ParseError{Field: field, Expected: strconv.Itoa(n) + " more characters", Found: input, Err: ErrUnexpectedEOF}
	}
	return input[:n], input[n:], nil
}

// hexField consumes a fixed-width hex number. Either case is accepted.
func hexField(input string, width int, field string) (uint32, string, error) {
	raw, rest, err := take(input, width, field)
	if err != nil {
		return 0, "", err
	}
	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, "", &ParseError{Field: field, Expected: strconv.Itoa(width) + " hex digits", Found: raw}
	}
	return uint32(value), rest, nil
}

func head(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
