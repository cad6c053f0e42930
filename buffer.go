package morse_tree

const defaultBufferCapacity = 256

// outputBuffer accumulates an encoded or decoded message.
// Its capacity doubles, or jumps to the required size, whenever an append
// would overflow it.
type outputBuffer struct {
	data []byte
}

func newOutputBuffer(capacity int) *outputBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}

	return &outputBuffer{
		data: make([]byte, 0, capacity),
	}
}

func (b *outputBuffer) grow(n int) {
	required := len(b.data) + n
	if required <= cap(b.data) {
		return
	}

	capacity := cap(b.data) * 2
	if capacity < required {
		capacity = required
	}

	data := make([]byte, len(b.data), capacity)
	copy(data, b.data)
	b.data = data
}

func (b *outputBuffer) appendByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

func (b *outputBuffer) appendRune(r rune) {
	if r < 0x80 {
		b.appendByte(byte(r))
		return
	}

	b.appendString(string(r))
}

func (b *outputBuffer) appendString(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// trimTrailing drops a single trailing occurrence of c.
func (b *outputBuffer) trimTrailing(c byte) {
	if n := len(b.data); n > 0 && b.data[n-1] == c {
		b.data = b.data[:n-1]
	}
}

func (b *outputBuffer) len() int {
	return len(b.data)
}

func (b *outputBuffer) cap() int {
	return cap(b.data)
}

func (b *outputBuffer) String() string {
	return string(b.data)
}
