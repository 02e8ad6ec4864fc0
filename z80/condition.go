package z80

import (
	"strings"
)

// Condition is a branch condition code.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_NZ = Condition(0) // NZ
	COND_Z  = Condition(1) // Z
	COND_NC = Condition(2) // NC
	COND_C  = Condition(3) // C
	COND_PO = Condition(4) // PO
	COND_PE = Condition(5) // PE
	COND_P  = Condition(6) // P
	COND_M  = Condition(7) // M
)

var conditionMap = map[string]Condition{}

func init() {
	for cond := COND_NZ; cond <= COND_M; cond++ {
		conditionMap[cond.String()] = cond
	}
}

// ParseCondition parses a condition code name, ignoring case.
func ParseCondition(text string) (cond Condition, ok bool) {
	cond, ok = conditionMap[strings.ToUpper(strings.TrimSpace(text))]
	return
}

// IsRelative returns true if the condition can be used with JR.
func (cond Condition) IsRelative() bool {
	return cond <= COND_C
}
