package domain

import "fmt"

// ContractViolation signals a caller bug: an operation was invoked with its
// precondition unmet or a mutation would break an entity invariant. It is
// raised via panic and is not meant to be recovered into a user-facing status.
type ContractViolation struct {
	Reason string
}

func (v ContractViolation) Error() string {
	return fmt.Sprintf("contract violation: %s", v.Reason)
}

func precondition(ok bool, reason string) {
	if !ok {
		panic(ContractViolation{Reason: reason})
	}
}
