package bench

// PerformanceMetrics is the combined outcome of one analysis. Complexity
// is nil when complexity analysis was disabled.
type PerformanceMetrics struct {
	Result     Answer            `json:"result" yaml:"result"`
	Timing     TimingResult      `json:"timing" yaml:"timing"`
	Resources  ResourceUsage     `json:"resources" yaml:"resources"`
	Complexity *ComplexityResult `json:"complexity,omitempty" yaml:"complexity,omitempty"`
}
