package td

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/tabular"
	"github.com/samuelfneumann/gotabular/environment"
)

func init() {
	agent.Register(agent.TemporalDifference, func(h agent.Hyperparameters) agent.Config {
		return Config{
			Discount:     h.Discount,
			LearningRate: h.LearningRate,
			Episodes:     h.Episodes,
		}
	})
}

// Config represents a configuration for the TD agent
type Config struct {
	Discount     float64
	LearningRate float64
	Episodes     int
}

// CreateAgent creates the agent from the Config. The seed is unused
// since the agent is deterministic given the environment.
func (c Config) CreateAgent(env environment.Environment,
	_ uint64) (agent.Solver, error) {
	s, err := tabular.AsSampler(env)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %w", err)
	}
	return New(s, c)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	return tabular.Validate(c.Discount, c.LearningRate, c.Episodes).ErrorOrNil()
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.TemporalDifference
}
