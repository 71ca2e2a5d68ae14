/*
invocation.go - Caller identity carried into service calls

PURPOSE:
  Services receive an Invocation alongside the context. It identifies the
  organization whose rows may be read and the actor on whose behalf the
  call runs. The engine performs no authentication or role resolution -
  an Invocation reaching a service is assumed to be already validated by
  the caller.

SEE ALSO:
  - statement/service.go, intercompany/service.go: Consumers
*/
package fincore

// =============================================================================
// IDENTIFIERS
// =============================================================================

// OrgID identifies the organization that owns the rows a service reads.
type OrgID string

// =============================================================================
// INVOCATION - Who is asking, for which organization
// =============================================================================

// Invocation carries organization id and actor identity into a service
// call. It is informational: the engine does not make authorization
// decisions from it, but echoes ActorID into explanations and run reports
// for auditability.
type Invocation struct {
	OrgID   OrgID
	ActorID string
	Roles   []string
}

// HasRole reports whether the invocation carries the named role. Provided
// for callers that want to gate endpoints; the engine itself never calls it.
func (inv Invocation) HasRole(role string) bool {
	for _, r := range inv.Roles {
		if r == role {
			return true
		}
	}
	return false
}
