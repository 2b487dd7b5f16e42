package area

// Tuning constants of the TTWA methodology (spec.md §4.2.4, §6). These are
// compile-time constants of the methodology, not runtime configuration.
const (
	MinSize           = 3500.0
	TargetSize        = 25000.0
	MinContainment    = 0.667
	TargetContainment = 0.75
	Threshold         = 0.0

	// qualifiedScore is the fixed positive score assigned to an area that
	// clears both the target size and target containment thresholds.
	qualifiedScore = 1.0 / 12.0
)

// Tradeoff and Intercept define the linear trade-off plane between the
// MIN_SIZE/MIN_CONTAINMENT and TARGET_SIZE/TARGET_CONTAINMENT corners.
var (
	Tradeoff  = (MinContainment - TargetContainment) / (TargetSize - MinSize)
	Intercept = TargetContainment - Tradeoff*MinSize
)
