package scope

import "fmt"

// ScopeNotFoundError reports a Require with no matching ancestor scope
// between the requesting position and the root. Recoverable: callers that
// can live without the controller should use Lookup instead.
type ScopeNotFoundError struct {
	ControllerType string
}

func (e *ScopeNotFoundError) Error() string {
	return fmt.Sprintf("scope: no ancestor scope provides %s", e.ControllerType)
}

// InvalidScopeTransitionError reports a reconfiguration that switched the
// descriptor variant at a mounted tree position. This is a programming
// error; it is delivered by panic, not returned.
type InvalidScopeTransitionError struct {
	From, To string
}

func (e *InvalidScopeTransitionError) Error() string {
	return fmt.Sprintf("scope: descriptor variant changed from %s to %s at the same tree position", e.From, e.To)
}
