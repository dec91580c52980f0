package radial

import "strconv"

// Action is a quantum number button press.
type Action string

const (
	ActionNone   Action = ""
	ActionNPlus  Action = "n-plus"
	ActionNMinus Action = "n-minus"
	ActionLPlus  Action = "l-plus"
	ActionLMinus Action = "l-minus"
)

// Notice explains why a button press was refused. Key names a message
// catalog entry rendered with Metadata.
type Notice struct {
	Key      string
	Metadata map[string]string
}

// Error implements error.
func (n *Notice) Error() string {
	return n.Key
}

// Select applies action to (n, l). Refused presses leave the state unchanged
// and return a Notice.
func Select(o Orbital, action Action) (Orbital, *Notice) {
	switch action {
	case ActionNPlus:
		if o.N >= MaxN {
			return o, &Notice{Key: "radial.error.n_max", Metadata: map[string]string{"Max": strconv.Itoa(MaxN)}}
		}
		o.N++
	case ActionNMinus:
		if o.N <= MinN {
			return o, &Notice{Key: "radial.error.n_min"}
		}
		if o.L == o.N-1 {
			return o, &Notice{Key: "radial.error.reduce_l", Metadata: map[string]string{
				"L": strconv.Itoa(o.L), "N": strconv.Itoa(o.N),
			}}
		}
		o.N--
	case ActionLPlus:
		if o.L >= o.N-1 {
			return o, &Notice{Key: "radial.error.l_max", Metadata: map[string]string{
				"N": strconv.Itoa(o.N), "Max": strconv.Itoa(o.N - 1),
			}}
		}
		o.L++
	case ActionLMinus:
		if o.L <= 0 {
			return o, &Notice{Key: "radial.error.l_min"}
		}
		o.L--
	}
	return o, nil
}
