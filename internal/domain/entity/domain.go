package entity

// Domain は独立して永続化・コミットされる設定ドメインを表します
type Domain string

const (
	DomainProfile     Domain = "profile"
	DomainPreferences Domain = "preferences"
	DomainInterface   Domain = "interface"
	DomainAvatar      Domain = "avatar"
)

// ValidDomain はドメイン名が既知かどうかを判定します
func ValidDomain(d string) bool {
	switch Domain(d) {
	case DomainProfile, DomainPreferences, DomainInterface, DomainAvatar:
		return true
	}
	return false
}
