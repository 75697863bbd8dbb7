package stream

// DefaultCapacity is the default ring buffer size B = 2^8, split into
// two 128-byte half-pages.
const DefaultCapacity = 256

// Buffer is a fixed-capacity ring buffer over a Source. It exposes
// Current/Advance/Retreat for the lexer's one-byte-of-lookahead scan,
// plus Fill to pull more bytes in and HasMore to tell a caller who just
// saw the internal EOF marker whether calling Fill would help.
//
// Capacity must be a power of two greater than 2 (checked by New).
type Buffer struct {
	src   Source
	data  []byte
	valid []bool // valid[i]: does data[i] hold a real pattern byte right now

	capacity int
	mask     int // capacity - 1, for fast modular arithmetic
	half     int // capacity / 2

	cur       int  // current cursor, in [0, capacity)
	nextHalf  int  // which half (0 or 1) Fill will refill next
	exhausted bool // source confirmed to have no more bytes at all
}

// New creates a Buffer over src with DefaultCapacity.
func New(src Source) *Buffer {
	return NewSize(src, DefaultCapacity)
}

// NewSize creates a Buffer over src with the given capacity, which must
// be a power of two greater than 2.
func NewSize(src Source, capacity int) *Buffer {
	if capacity <= 2 || capacity&(capacity-1) != 0 {
		panic("stream: capacity must be a power of two greater than 2")
	}
	b := &Buffer{
		src:      src,
		data:     make([]byte, capacity),
		valid:    make([]bool, capacity),
		capacity: capacity,
		mask:     capacity - 1,
		half:     capacity / 2,
	}
	b.Fill()
	return b
}

func (b *Buffer) wrap(i int) int { return i & b.mask }

// Advance moves the cursor forward by one byte, wrapping modulo
// capacity.
func (b *Buffer) Advance() { b.cur = b.wrap(b.cur + 1) }

// Retreat moves the cursor back by one byte, wrapping modulo capacity.
// Retreating more than one half-page past the last Fill is not
// supported (mirrors the single-step rewind contract of spec.md §4.1).
func (b *Buffer) Retreat() { b.cur = b.wrap(b.cur - 1) }

// Current returns the byte at the cursor and true, or (0, false) if the
// cursor has reached a position not yet backed by real pattern bytes
// (the EOF sentinel position). Callers that see false should consult
// HasMore and, if true, call Fill and retry Current.
func (b *Buffer) Current() (byte, bool) {
	if !b.valid[b.cur] {
		return 0, false
	}
	return b.data[b.cur], true
}

// HasMore reports whether the underlying Source might still produce
// bytes. Once false, the end of input has been reached for good and
// must not be crossed.
func (b *Buffer) HasMore() bool {
	return !b.exhausted
}

// Fill refills the half-page the cursor is not currently positioned in,
// pulling fresh bytes from the Source starting right after the bytes
// already valid in the other half. The slot one past the last byte
// actually read is marked invalid, which is what Current reports back
// as the EOF sentinel; after a full half-page read that slot is the
// first slot of the other half. Retreating one byte across a half-page
// boundary into the half just vacated is always safe because Fill never
// touches that half's last slot.
func (b *Buffer) Fill() {
	if b.exhausted {
		return
	}

	refillHalf := b.nextHalf
	b.nextHalf = 1 - b.nextHalf

	start := refillHalf * b.half
	n := b.src.Read(b.data[start : start+b.half])
	for i := 0; i < n; i++ {
		b.valid[start+i] = true
	}
	for i := n; i < b.half; i++ {
		b.valid[start+i] = false
	}
	b.valid[b.wrap(start+n)] = false
	if b.src.EOF() {
		b.exhausted = true
	}
}
