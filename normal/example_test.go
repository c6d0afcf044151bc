package normal_test

import (
	"fmt"

	"github.com/katalvlaran/probkit/normal"
)

// ExampleRatio demonstrates the tail behavior that motivates log-space
// evaluation: at x = −10 both φ(x) and Φ(x) are around 1e−23, yet their
// ratio is a perfectly ordinary number close to |x|.
func ExampleRatio() {
	fmt.Printf("Ratio(0)   = %.4f\n", normal.Ratio(0))
	fmt.Printf("Ratio(-10) = %.4f\n", normal.Ratio(-10))
	// Output:
	// Ratio(0)   = 0.7979
	// Ratio(-10) = 10.0981
}

// ExampleLogCDF shows logΦ staying finite far beyond the point where Φ
// itself underflows to zero.
func ExampleLogCDF() {
	fmt.Printf("LogCDF(-5)  = %.4f\n", normal.LogCDF(-5))
	fmt.Printf("LogCDF(-30) = %.4f\n", normal.LogCDF(-30))
	// Output:
	// LogCDF(-5)  = -15.0650
	// LogCDF(-30) = -454.3212
}

// ExampleRatioTo applies the ratio elementwise over a vector, reusing a
// caller-owned destination slice.
func ExampleRatioTo() {
	x := []float64{-2, -1, 0, 1, 2}
	dst := make([]float64, len(x))
	normal.RatioTo(dst, x)
	for i, g := range dst {
		fmt.Printf("g(%v) = %.4f\n", x[i], g)
	}
	// Output:
	// g(-2) = 2.3732
	// g(-1) = 1.5251
	// g(0) = 0.7979
	// g(1) = 0.2876
	// g(2) = 0.0552
}
