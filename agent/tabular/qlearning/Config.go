package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/tabular"
	"github.com/samuelfneumann/gotabular/environment"
)

func init() {
	agent.Register(agent.QLearning, func(h agent.Hyperparameters) agent.Config {
		return Config{
			Discount:     h.Discount,
			LearningRate: h.LearningRate,
			Epsilon:      h.Epsilon,
			Episodes:     h.Episodes,
		}
	})
}

// Config represents a configuration for the QLearning agent
type Config struct {
	Discount     float64
	LearningRate float64
	Epsilon      float64 // Initial epsilon for behaviour policy
	Episodes     int
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Solver, error) {
	s, err := tabular.AsSampler(env)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %w", err)
	}
	return New(s, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	err := tabular.Validate(c.Discount, c.LearningRate, c.Episodes)
	return tabular.ValidateEpsilon(err, c.Epsilon).ErrorOrNil()
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.QLearning
}
