package agent

import (
	"fmt"
	"sort"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Model-based methods
	PolicyIteration Type = "PolicyIteration"
	ValueIteration  Type = "ValueIteration"

	// Sampling-based methods
	QLearning          Type = "QLearning"
	Sarsa              Type = "Sarsa"
	TemporalDifference Type = "TD"
)

// Factory creates a Config from a set of Hyperparameters
type Factory func(Hyperparameters) Config

// Registered types with the package. Once a Type has been registered
// with this map, a Config with that type can be created.
//
// No Type's are registered with this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]Factory

func init() {
	registeredTypes = make(map[Type]Factory)
}

// Register registers an agent's Type with a Factory so that Configs of
// that Type can be created with NewConfig.
//
// Note that each package is required to register its own Config's
// with an agentType separately. This package registers no agentTypes
// with any Config's. This is to avoid circular imports.
func Register(agentType Type, factory Factory) {
	registeredTypes[agentType] = factory
}

// NewConfig returns a Config of type agentType configured with the
// hyperparameters h
func NewConfig(agentType Type, h Hyperparameters) (Config, error) {
	factory, ok := registeredTypes[agentType]
	if !ok {
		return nil, fmt.Errorf("newConfig: no such agent type %v", agentType)
	}
	return factory(h), nil
}

// Types returns all registered Types in sorted order
func Types() []Type {
	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
