package domain

// Admit is the single authorization decision for every protected view or
// action. An empty role (no identity) is never admitted. With no allowed
// roles listed, any authenticated identity is admitted; otherwise the role
// must be one of the allowed set.
func Admit(role string, allowed ...string) bool {
	if role == "" {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
