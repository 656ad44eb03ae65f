package sim

// NextEvent scans the per-node countdowns (in whole slot units) and
// returns the minimum value together with every node index achieving it.
// One contender means a successful transmission; two or more model a
// collision. Countdowns are integers, so ties are exact — no float
// representation drift can split or merge them.
func NextEvent(countdowns []int64) (value int64, contenders []int) {
	value = countdowns[0]
	for _, c := range countdowns[1:] {
		if c < value {
			value = c
		}
	}
	for i, c := range countdowns {
		if c == value {
			contenders = append(contenders, i)
		}
	}
	return value, contenders
}
