package assert

import "fmt"

// Level gates how much of the assertion family actually executes.
type Level uint8

const (
	// LevelNone disables every gated assertion.
	LevelNone           Level = iota // checks disabled
	LevelNormal                      // standard invariant checks
	LevelAggressive                  // expensive consistency checks
	LevelVeryAggressive              // everything, including per-node sweeps
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelNormal:
		return "normal"
	case LevelAggressive:
		return "aggressive"
	case LevelVeryAggressive:
		return "very-aggressive"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "none", "NONE":
		return LevelNone, nil
	case "normal", "NORMAL":
		return LevelNormal, nil
	case "aggressive", "AGGRESSIVE":
		return LevelAggressive, nil
	case "very-aggressive", "VERY-AGGRESSIVE":
		return LevelVeryAggressive, nil
	default:
		return LevelNone, fmt.Errorf("invalid assertion level: %q (expected: none|normal|aggressive|very-aggressive)", s)
	}
}

// currentLevel is process-wide startup configuration. The subsystem runs
// on a single logical thread; a concurrent host must serialize SetLevel
// against assertion calls itself.
var currentLevel = LevelNormal

// SetLevel reconfigures the assertion level and rebinds the node
// assertion functions so that disabled checks cost nothing per call.
func SetLevel(l Level) {
	currentLevel = l
	bindNodeAsserts()
}

// CurrentLevel returns the configured assertion level.
func CurrentLevel() Level { return currentLevel }

// ShouldAssert reports whether checks requiring l are enabled.
func ShouldAssert(l Level) bool { return currentLevel >= l }
