package misc

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// LerpUint8 interpolates between two channel values. The result is truncated, not rounded.
func LerpUint8(v1 uint8, v2 uint8, fraction float64) uint8 {
	return uint8(LerpFloat64(float64(v1), float64(v2), fraction))
}
