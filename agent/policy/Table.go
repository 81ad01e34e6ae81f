// Package policy implements tabular policies and action selection
// rules over tables of action values.
package policy

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/samuelfneumann/gotabular/environment"
)

// Table is a deterministic policy which maps each state to a single
// action. Table[s] is the action taken in state s.
type Table []int

// NewTable returns a Table over the given number of states, with
// action 0 chosen in every state
func NewTable(states int) Table {
	return make(Table, states)
}

// Action returns the action chosen by the policy in state
func (t Table) Action(state int) int {
	return t[state]
}

// Validate returns an error if the Table does not have exactly one
// valid action for each state of env
func (t Table) Validate(env environment.Environment) error {
	if len(t) != env.NumStates() {
		return fmt.Errorf("validate: policy has %d states, environment "+
			"has %d", len(t), env.NumStates())
	}
	for s, a := range t {
		if err := environment.CheckAction(env, a); err != nil {
			return fmt.Errorf("validate: state %d: %w", s, err)
		}
	}
	return nil
}

// Clone returns a copy of the Table
func (t Table) Clone() Table {
	return append(Table(nil), t...)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (t Table) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode([]int(t)); err != nil {
		return nil, fmt.Errorf("marshalBinary: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (t *Table) UnmarshalBinary(data []byte) error {
	var actions []int
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&actions); err != nil {
		return fmt.Errorf("unmarshalBinary: %w", err)
	}
	*t = actions
	return nil
}
