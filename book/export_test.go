package book

// Reset clears the in-memory book between tests.
func Reset() {
	reset()
}
