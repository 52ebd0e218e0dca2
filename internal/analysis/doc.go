// Package analysis extracts summary figures from headless runs: the
// dominant period of per-frame telemetry such as the contact rate, and a
// trajectory-separation estimate of how chaotic a layout is.
package analysis
