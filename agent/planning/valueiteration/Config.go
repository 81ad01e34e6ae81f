package valueiteration

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/planning"
	"github.com/samuelfneumann/gotabular/environment"
)

func init() {
	agent.Register(agent.ValueIteration, func(h agent.Hyperparameters) agent.Config {
		return Config{Discount: h.Discount, Iterations: h.Iterations}
	})
}

// Config represents a configuration for the ValueIteration agent
type Config struct {
	Discount   float64
	Iterations int // Number of sweeps over the state space
}

// CreateAgent creates the agent from the Config. The environment must
// expose its transition model.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Solver, error) {
	m, err := planning.AsModel(env)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %w", err)
	}
	return New(m, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	return planning.Validate(c.Discount, c.Iterations)
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.ValueIteration
}
