//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 timer peripheral: a free-running 64-bit microsecond counter.
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // raw counter, low word
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// hardwareMicros reads the low 32 bits of the microsecond counter. It
// wraps every ~71 minutes; callers only ever subtract readings, so the
// wrap is harmless.
func hardwareMicros() uint32 {
	return timerRAWL.Get()
}
