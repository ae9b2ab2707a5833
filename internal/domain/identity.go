package domain

// Capability is the access level an identity carries. It is fixed when the
// identity is created and never changes.
type Capability string

const (
	// CapabilityRequester may create trades and submit or approve trades it owns.
	CapabilityRequester Capability = "requester"

	// CapabilityApprover may accept, update, route for execution and book
	// trades without an ownership check.
	CapabilityApprover Capability = "approver"
)

var validCapabilities = map[Capability]bool{
	CapabilityRequester: true,
	CapabilityApprover:  true,
}

// IsValid checks if the capability is a known capability.
func (c Capability) IsValid() bool {
	return validCapabilities[c]
}

// Identity is an opaque user identifier tagged with a capability.
type Identity struct {
	ID         string
	Capability Capability
}

// NewRequester creates a Requester identity.
func NewRequester(id string) Identity {
	return Identity{ID: id, Capability: CapabilityRequester}
}

// NewApprover creates an Approver identity.
func NewApprover(id string) Identity {
	return Identity{ID: id, Capability: CapabilityApprover}
}

// Equal reports whether two identities have the same identifier and capability.
func (i Identity) Equal(other Identity) bool {
	return i.ID == other.ID && i.Capability == other.Capability
}
