package qlearning

// SetEpsilonForTest fixes the exploration rate of q
func (q *QLearning) SetEpsilonForTest(e float64) {
	q.behaviour.SetEpsilon(e)
}
