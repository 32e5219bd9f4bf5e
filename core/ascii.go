package core

const asciiZero = '0'

// FormatFixedPoint renders v (0..99) as a 4-character buffer: tens
// digit, units digit, '.', and a literal '0'. The system measures
// whole units only; the fractional digit is a fixed placeholder, not a
// computed value.
func FormatFixedPoint(v uint8) [4]byte {
	return [4]byte{
		asciiZero + v/10,
		asciiZero + v%10,
		'.',
		asciiZero,
	}
}
