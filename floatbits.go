package json

import "math"

func isInfOrNaN64(f float64) bool { return math.IsInf(f, 0) || math.IsNaN(f) }
func isInfOrNaN32(f float32) bool { f64 := float64(f); return math.IsInf(f64, 0) || math.IsNaN(f64) }

func isNegativeSign64(f float64) bool { return math.Signbit(f) }
func isNegativeSign32(f float32) bool { return math.Signbit(float64(f)) }

func absFloat64(f float64) float64 { return math.Abs(f) }
func absFloat32(f float32) float32 { return float32(math.Abs(float64(f))) }

func math10Pow(e float64) float64 { return math.Pow(10, e) }

func nan64() float64 { return math.NaN() }
func nan32() float32 { return float32(math.NaN()) }
