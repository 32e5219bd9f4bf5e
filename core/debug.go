package core

// DebugWriter is the platform print hook used by target builds, which
// have no fmt-backed console.
type DebugWriter func(string)

// debugPrintln is a no-op until the platform registers a writer.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter redirects debug output (UART, USB CDC, test capture).
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrintln = w
}

// DebugPrintln writes one debug line through the registered writer.
func DebugPrintln(msg string) {
	debugPrintln(msg)
}

// Utoa converts an unsigned integer to a string without the fmt
// package, keeping target binaries small.
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	digits := 0
	for temp := n; temp > 0; temp /= 10 {
		digits++
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}
	return string(buf)
}
