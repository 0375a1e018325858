package engine_test

// Common test resource types
type Counter struct {
	Value int
}

type Clock struct {
	Elapsed float64
}

type Label string
