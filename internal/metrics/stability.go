package metrics

import "github.com/san-kum/collide/internal/dynamo"

// Containment is the fraction of observed frames in which every body lay
// fully inside the bounds.
type Containment struct {
	name       string
	bounds     dynamo.Bounds
	violations int
	samples    int
}

func NewContainment(bounds dynamo.Bounds) *Containment {
	return &Containment{
		name:   "containment",
		bounds: bounds,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(bodies []dynamo.Body, t float64) {
	c.samples++
	for _, b := range bodies {
		if !c.bounds.Contains(b) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// Overlap is the mean number of overlapping pairs left at the end of a
// frame.
type Overlap struct {
	name    string
	pairs   int
	samples int
}

func NewOverlap() *Overlap {
	return &Overlap{name: "residual_overlap"}
}

func (o *Overlap) Name() string { return o.name }

func (o *Overlap) Observe(bodies []dynamo.Body, t float64) {
	o.samples++
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Overlaps(bodies[j]) {
				o.pairs++
			}
		}
	}
}

func (o *Overlap) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.pairs) / float64(o.samples)
}

func (o *Overlap) Reset() {
	o.pairs = 0
	o.samples = 0
}
