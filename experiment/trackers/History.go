package trackers

// DefaultInterval is the number of episodes between samples recorded
// by a History
const DefaultInterval int = 100

// Sample is the total reward obtained in a single episode
type Sample struct {
	Episode int
	Reward  float64
}

// History is an append-only log of episodic returns, subsampled at a
// fixed interval of episodes. Episodes 0, interval, 2*interval, ... are
// recorded and all others are ignored.
type History struct {
	interval int
	samples  []Sample
}

// NewHistory returns a new History which records every interval-th
// episode. If interval is not positive, DefaultInterval is used.
func NewHistory(interval int) *History {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &History{interval: interval}
}

// Track records the total reward of episode if episode falls on the
// sampling interval. Track returns whether the episode was recorded.
func (h *History) Track(episode int, reward float64) bool {
	if episode%h.interval != 0 {
		return false
	}
	h.samples = append(h.samples, Sample{Episode: episode, Reward: reward})
	return true
}

// Samples returns a copy of all recorded samples in the order in which
// they were recorded
func (h *History) Samples() []Sample {
	return append([]Sample(nil), h.samples...)
}

// SaveHistory saves samples to filename so that they can be loaded
// with LoadHistory
func SaveHistory(filename string, samples []Sample) error {
	return save(filename, samples)
}

// LoadHistory loads samples saved by SaveHistory
func LoadHistory(filename string) ([]Sample, error) {
	var samples []Sample
	if err := load(filename, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}
