package agent

import (
	"github.com/samuelfneumann/gotabular/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Solver, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent constructed by the Config
	Type() Type
}

// Hyperparameters collects the hyperparameters of every registered
// algorithm. Each algorithm uses only the hyperparameters it needs and
// ignores the rest.
type Hyperparameters struct {
	Discount     float64
	Iterations   int // Sweeps for model-based algorithms
	Episodes     int // Episodes for sampling-based algorithms
	LearningRate float64
	Epsilon      float64 // Initial exploration rate
}
