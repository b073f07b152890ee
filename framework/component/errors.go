package component

import (
	"fmt"
	"strconv"
)

// All build failures fall into one of four families, and every one of them
// aborts Build entirely: no error is recovered, retried, or survived by a
// partially built Registry.
//
//   - ConfigurationError: an invalid descriptor (scope markers, constructor
//     selection, provider method shape).
//   - DuplicateProviderError: two sources claim the same TypeID.
//   - UnknownDependencyError: a provider requires a type nobody registered.
//   - CircularDependencyError: resolution re-entered a type already under
//     construction.
//   - ConstructionError: a build or invoke closure failed.

// ConfigurationError reports an invalid descriptor discovered while
// building the blueprint.
type ConfigurationError struct {
	// Type is the candidate the invalid declaration belongs to.
	Type TypeID

	// Detail describes the violation.
	Detail string
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	return "component: invalid configuration for " + strconv.Quote(string(e.Type)) + ": " + e.Detail
}

// DuplicateProviderError reports two sources claiming the same TypeID.
type DuplicateProviderError struct {
	// Type is the contested TypeID.
	Type TypeID

	// First and Second describe the competing sources, in discovery order.
	First, Second string
}

// Error implements the error interface.
func (e DuplicateProviderError) Error() string {
	return fmt.Sprintf("component: duplicate provider for %q: claimed by %s and %s",
		string(e.Type), e.First, e.Second)
}

// UnknownDependencyError reports a parameter type that was never
// registered as either singleton or non-singleton.
type UnknownDependencyError struct {
	// Missing is the unregistered TypeID.
	Missing TypeID

	// RequiredBy is the provider whose parameter demanded it, when known.
	RequiredBy TypeID
}

// Error implements the error interface.
func (e UnknownDependencyError) Error() string {
	if e.RequiredBy == "" {
		return "component: unknown dependency " + strconv.Quote(string(e.Missing))
	}
	return fmt.Sprintf("component: unknown dependency %q required by %q",
		string(e.Missing), string(e.RequiredBy))
}

// CircularDependencyError reports a dependency cycle. Type names one type
// participating in the cycle; Stack is the resolution path that closed it.
type CircularDependencyError struct {
	Type  TypeID
	Stack []TypeID
}

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	msg := "component: circular dependency involving " + strconv.Quote(string(e.Type))
	if len(e.Stack) > 0 {
		msg += " (resolution path:"
		for _, id := range e.Stack {
			msg += " " + string(id)
		}
		msg += ")"
	}
	return msg
}

// ConstructionError wraps a failure raised while invoking a constructor or
// provider method.
type ConstructionError struct {
	// Type is the TypeID under construction when the failure occurred.
	Type TypeID

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	return fmt.Sprintf("component: constructing %q: %v", string(e.Type), e.Err)
}

// Unwrap returns the underlying failure.
func (e ConstructionError) Unwrap() error { return e.Err }
