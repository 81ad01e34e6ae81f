package sarsa

// SetEpsilonForTest fixes the exploration rate of s
func (s *Sarsa) SetEpsilonForTest(e float64) {
	s.explorer.SetEpsilon(e)
}
