package core

// Rolling is a fixed-capacity ring of the most recent samples. Once
// full it stays full; each further Push overwrites the oldest slot, so
// the ring always holds exactly the newest values.
type Rolling struct {
	buf   []uint8
	count int
	next  int
}

// NewRolling returns an empty ring holding up to capacity samples.
func NewRolling(capacity int) *Rolling {
	if capacity < 1 {
		capacity = 1
	}
	return &Rolling{buf: make([]uint8, capacity)}
}

// Push stores one sample, evicting the oldest when the ring is full.
func (r *Rolling) Push(v uint8) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Len returns how many valid samples the ring holds.
func (r *Rolling) Len() int {
	return r.count
}

// Average returns the integer-truncated mean of the valid samples, or
// 0 when the ring is empty. The uint32 accumulator cannot overflow for
// any realistic capacity of uint8 samples.
func (r *Rolling) Average() uint8 {
	if r.count == 0 {
		return 0
	}
	var acc uint32
	for i := 0; i < r.count; i++ {
		acc += uint32(r.buf[i])
	}
	return uint8(acc / uint32(r.count))
}

// Reset discards all samples.
func (r *Rolling) Reset() {
	r.count = 0
	r.next = 0
}
