package nscp

import (
	"fmt"
	"math"
)

// NSCP 2015 elastic moduli

const (
	// Modulus of elasticity for steel, reinforcement (Section 420.2.2)
	// and structural (Section 502.1) alike
	Es = 200000.0 // MPa
)

// Ec calculates the modulus of elasticity of normal-weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c (MPa)
func Ec(fc float64) (float64, error) {
	if fc <= 0 {
		return 0, fmt.Errorf("invalid concrete strength: f'c=%.2f", fc)
	}
	return 4700 * math.Sqrt(fc), nil
}

// EcWeighted calculates Ec for concrete of unit weight wc (kg/m³)
// NSCP 2015 Section 419.2.2.1: Ec = wc^1.5 · 0.043√f'c, 1440 ≤ wc ≤ 2560
func EcWeighted(wc, fc float64) (float64, error) {
	if wc < 1440 || wc > 2560 {
		return 0, fmt.Errorf("unit weight outside 1440..2560 kg/m³: wc=%.0f", wc)
	}
	if fc <= 0 {
		return 0, fmt.Errorf("invalid concrete strength: f'c=%.2f", fc)
	}
	return math.Pow(wc, 1.5) * 0.043 * math.Sqrt(fc), nil
}
