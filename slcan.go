// Package slcan implements the Serial Line CAN (SLCAN) ASCII protocol
// spoken by Lawicel CANUSB, CANable and compatible USB/serial CAN
// adapters.
//
// The package is a pure codec. Commands format to carriage-return
// terminated strings and parse back from them; serial I/O, line
// framing of the byte stream and retry policy live in the adapter
// package. Hex fields are always emitted uppercase and accepted in
// either case.
package slcan

// CR terminates every SLCAN command on the wire.
const CR = 0x0D
