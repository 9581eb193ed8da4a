package session

// Identity is the authenticated actor as returned by the remote API.
type Identity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// WellFormed reports whether the identity carries the fields a restored
// session cannot do without. A persisted record missing them is discarded.
func (idt Identity) WellFormed() bool {
	return idt.ID != "" && idt.Permissions != nil
}

func (idt Identity) HasRole(name string) bool {
	return contains(idt.Roles, name)
}

func (idt Identity) HasPermission(name string) bool {
	return contains(idt.Permissions, name)
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
