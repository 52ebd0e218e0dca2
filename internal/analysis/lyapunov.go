package analysis

import (
	"math"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/physics"
)

// LyapunovExponent estimates the largest Lyapunov exponent of the world by
// trajectory separation. A copy of the world with body 0 shifted by
// perturbation along x runs alongside the unperturbed one for the given number of
// frames. A positive value means nearby layouts diverge.
//
// λ ≈ (1/t) * Σ ln(|δ|/|δ(0)|), summed over each renormalisation of δ
// (whenever it exceeds renorm) and the final frame.
// The world passed in is not modified.
func LyapunovExponent(w *physics.World, dt float64, frames int, perturbation, renorm float64) float64 {
	if len(w.Bodies) == 0 || frames <= 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	ref := w.Clone()
	pert := w.Clone()
	pert.Bodies[0].Position.X += perturbation

	d0 := perturbation
	sumLog := 0.0
	sep := d0

	for i := 0; i < frames; i++ {
		ref.Step(dt)
		pert.Step(dt)

		sep = separation(ref.Bodies, pert.Bodies)
		if sep > renorm {
			sumLog += math.Log(sep / d0)
			scale := d0 / sep
			for k := range pert.Bodies {
				r, p := ref.Bodies[k], &pert.Bodies[k]
				p.Position = r.Position.Add(p.Position.Sub(r.Position).Scale(scale))
				p.Velocity = r.Velocity.Add(p.Velocity.Sub(r.Velocity).Scale(scale))
			}
			sep = d0
		}
	}
	if sep > 0 {
		sumLog += math.Log(sep / d0)
	}

	return sumLog / (float64(frames) * dt)
}

// separation is the Euclidean distance between two layouts in the combined
// position and velocity space.
func separation(a, b []dynamo.Body) float64 {
	sum := 0.0
	for i := range a {
		dp := b[i].Position.Sub(a[i].Position)
		dv := b[i].Velocity.Sub(a[i].Velocity)
		sum += dp.Dot(dp) + dv.Dot(dv)
	}
	return math.Sqrt(sum)
}
