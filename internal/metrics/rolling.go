package metrics

// RollingAverage is the arithmetic mean of the last N samples pushed. The
// frame driver uses it to smooth instantaneous 1/dt into a displayed FPS.
type RollingAverage struct {
	buf  []float64
	head int
	n    int
	sum  float64
}

const DefaultFPSWindow = 100

func NewRollingAverage(size int) *RollingAverage {
	if size < 1 {
		size = 1
	}
	return &RollingAverage{buf: make([]float64, size)}
}

func (r *RollingAverage) Push(v float64) {
	if r.n == len(r.buf) {
		r.sum -= r.buf[r.head]
	} else {
		r.n++
	}
	r.buf[r.head] = v
	r.sum += v
	r.head = (r.head + 1) % len(r.buf)
}

func (r *RollingAverage) Value() float64 {
	if r.n == 0 {
		return 0
	}
	return r.sum / float64(r.n)
}

func (r *RollingAverage) Len() int { return r.n }

func (r *RollingAverage) Reset() {
	for i := range r.buf {
		r.buf[i] = 0
	}
	r.head, r.n, r.sum = 0, 0, 0
}
