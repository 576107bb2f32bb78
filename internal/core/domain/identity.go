package domain

// Identity is an opaque, globally unique caller reference (principal).
type Identity string

// AnonymousIdentity is the reserved "no caller" principal. It never owns or inherits a will.
const AnonymousIdentity Identity = "2vxsx-fae"

// IsAnonymous reports whether id is unset or the reserved anonymous principal.
func (id Identity) IsAnonymous() bool {
	return id == "" || id == AnonymousIdentity
}

// String returns the identity text.
func (id Identity) String() string {
	return string(id)
}

// DerivationPath returns the key-derivation path scoped to this identity.
// A single component holding the raw identity bytes.
func (id Identity) DerivationPath() [][]byte {
	return [][]byte{[]byte(id)}
}
