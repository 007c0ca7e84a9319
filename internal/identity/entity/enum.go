package entity

// Gender is the optional self-reported gender on a user profile.
type Gender int16

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

var genderNames = map[Gender]string{
	GenderMale:   "male",
	GenderFemale: "female",
	GenderOther:  "other",
}

func (g Gender) String() string {
	return genderNames[g]
}

// GenderFromString parses the wire representation; unrecognized values map to
// GenderUnknown.
func GenderFromString(s string) Gender {
	for g, name := range genderNames {
		if name == s {
			return g
		}
	}
	return GenderUnknown
}

// Role controls access to administrative endpoints.
type Role int16

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

// RoleFromString parses the wire representation; unrecognized values map to
// RoleUser.
func RoleFromString(s string) Role {
	if s == "admin" {
		return RoleAdmin
	}
	return RoleUser
}

// ChallengeFlow distinguishes what a one-time code authorizes.
type ChallengeFlow int16

const (
	ChallengeFlowLogin ChallengeFlow = iota
	ChallengeFlowSignup
)

func (f ChallengeFlow) String() string {
	if f == ChallengeFlowSignup {
		return "signup"
	}
	return "login"
}
