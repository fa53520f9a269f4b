package orderid

// Floor values seen at the two order entry points.
const (
	FloorZero uint64 = 0
	FloorOne  uint64 = 1
)

// Allocator derives the next permanent code. It holds no mutable state.
type Allocator struct {
	floor uint64
}

// NewAllocator returns an allocator whose first code is RKR followed by floor.
func NewAllocator(floor uint64) Allocator {
	return Allocator{floor: floor}
}

func (a Allocator) Floor() Code {
	return FromNumber(a.floor)
}

// Next returns the code after latest. The counter is taken from the first RKR<digits>
// run anywhere in latest; an empty or unparseable latest restarts the series at the
// floor. It never fails.
func (a Allocator) Next(latest string) Code {
	n, ok := number(latestPattern, latest)
	if !ok || n == ^uint64(0) {
		return a.Floor()
	}
	return FromNumber(n + 1)
}
