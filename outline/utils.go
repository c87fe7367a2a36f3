package outline

// ceilDiv returns ceil(a/b) for non-negative a and positive b
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
