package catalog

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Policy decides which remote repositories are admitted into the catalog.
type Policy struct {
	PrivacyLevel string
}

func (p Policy) AllowsRepository(private bool) bool {
	switch p.PrivacyLevel {
	case PrivacyPrivate:
		return true
	case PrivacyPublic:
		return !private
	default:
		return false
	}
}
