package build

// State is a step of the build state machine.
type State int

// States in the order a successful run visits them. Failed is terminal and
// reachable from every state between Detecting and Installing.
const (
	StateInit State = iota
	StateDetecting
	StateCheckingTools
	StateBuilding
	StateInstalling
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateInit:          "init",
	StateDetecting:     "detecting",
	StateCheckingTools: "checking-tools",
	StateBuilding:      "building",
	StateInstalling:    "installing",
	StateDone:          "done",
	StateFailed:        "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// Terminal reports whether the run ends in s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
