package auth

// Capability names something a session may be allowed to do.
type Capability string

// CapabilityManageContent gates every content mutation and the admin reads.
const CapabilityManageContent Capability = "manage-content"

// Policy decides whether a session holds a capability. Handlers depend on
// this interface only, so swapping the single-password gate for real
// multi-user auth later does not touch any content contract.
type Policy interface {
	Allows(session *Session, capability Capability) bool
}

type adminPolicy struct{}

// NewAdminPolicy returns the single-owner policy: any valid admin session
// holds every capability.
func NewAdminPolicy() Policy {
	return adminPolicy{}
}

func (adminPolicy) Allows(session *Session, _ Capability) bool {
	return session != nil && session.Subject == adminSubject
}
