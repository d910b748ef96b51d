//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks

package fibonacci

// Generator produces Fibonacci sequence prefixes. It decouples callers such
// as the application layer from the concrete generation strategy.
type Generator interface {
	// Generate returns the first n terms of the sequence. It must return an
	// empty sequence for n <= 0 and never fail.
	Generate(n int) []uint64
	// Name returns a short display name for the implementation.
	Name() string
}

// Iterative is the default Generator. It computes each term from the two
// preceding ones in a single forward pass.
type Iterative struct{}

// Generate implements Generator.
func (Iterative) Generate(n int) []uint64 { return Generate(n) }

// Name implements Generator.
func (Iterative) Name() string { return "iterative" }

// NewDefaultGenerator returns the Generator used when none is injected.
func NewDefaultGenerator() Generator {
	return Iterative{}
}
