package grid

import (
	"fmt"

	"goban/internal/domain/board"
)

const (
	bucketWidth     = 32
	bitsPerPoint    = 2
	pointsPerBucket = bucketWidth / bitsPerPoint
	pointMask       = uint32(1)<<bitsPerPoint - 1
)

// 2-bit cell codes. 0b11 is never written.
const (
	codeEmpty uint32 = 0b00
	codeWhite uint32 = 0b01
	codeBlack uint32 = 0b10
)

// Compact packs 16 intersections into every uint32 bucket.
//
// Intersection index is rows*column + row. The backing slice carries one
// guard bucket past the last used one. Set copies the bucket slice and
// rewrites a single bucket, so older values stay valid.
type Compact struct {
	dim           board.Dimension
	buckets       []uint32
	capturedBlack int
	capturedWhite int
}

// NewCompact returns an all-empty grid of the given dimension.
func NewCompact(dim board.Dimension) (*Compact, error) {
	if dim.Columns <= 0 || dim.Rows <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrDimension, dim)
	}
	n := (dim.Points()+pointsPerBucket-1)/pointsPerBucket + 1
	return &Compact{
		dim:     dim,
		buckets: make([]uint32, n),
	}, nil
}

// NewStandard returns an empty 19x19 grid.
func NewStandard() *Compact {
	c, _ := NewCompact(board.Standard)
	return c
}

func (c *Compact) Dimension() board.Dimension {
	return c.dim
}

func (c *Compact) CapturedBlack() int {
	return c.capturedBlack
}

func (c *Compact) CapturedWhite() int {
	return c.capturedWhite
}

func (c *Compact) IsLegalPosition(p board.Position) bool {
	return inBounds(c.dim, p)
}

func (c *Compact) locate(p board.Position) (bucket int, shift uint) {
	index := c.dim.Rows*p.Column + p.Row
	return index / pointsPerBucket, uint(index%pointsPerBucket) * bitsPerPoint
}

func (c *Compact) Get(p board.Position) (board.Side, error) {
	if !c.IsLegalPosition(p) {
		return board.Empty, fmt.Errorf("%w: %s on %s grid", ErrPosition, p, c.dim)
	}
	bucket, shift := c.locate(p)
	code := (c.buckets[bucket] >> shift) & pointMask
	switch code {
	case codeEmpty:
		return board.Empty, nil
	case codeWhite:
		return board.White, nil
	case codeBlack:
		return board.Black, nil
	default:
		return board.Empty, fmt.Errorf("%w: code %02b at %s", ErrCorruptCell, code, p)
	}
}

func encode(side board.Side) uint32 {
	switch side {
	case board.White:
		return codeWhite
	case board.Black:
		return codeBlack
	default:
		return codeEmpty
	}
}

func (c *Compact) Set(p board.Position, side board.Side) (Grid, error) {
	if !c.IsLegalPosition(p) {
		return nil, fmt.Errorf("%w: %s on %s grid", ErrPosition, p, c.dim)
	}
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrSide, uint8(side))
	}
	bucket, shift := c.locate(p)

	next := c.clone()
	// clear first, then set: black and white are never overlaid
	next.buckets[bucket] &^= pointMask << shift
	next.buckets[bucket] |= encode(side) << shift
	return next, nil
}

func (c *Compact) AddCapturedBlack(n int) (Grid, error) {
	if c.capturedBlack+n < 0 {
		return nil, fmt.Errorf("%w: black %d%+d", ErrCaptureCount, c.capturedBlack, n)
	}
	next := *c
	next.capturedBlack += n
	return &next, nil
}

func (c *Compact) AddCapturedWhite(n int) (Grid, error) {
	if c.capturedWhite+n < 0 {
		return nil, fmt.Errorf("%w: white %d%+d", ErrCaptureCount, c.capturedWhite, n)
	}
	next := *c
	next.capturedWhite += n
	return &next, nil
}

func (c *Compact) clone() *Compact {
	next := *c
	next.buckets = make([]uint32, len(c.buckets))
	copy(next.buckets, c.buckets)
	return &next
}

func (c *Compact) String() string {
	return Format(c)
}
