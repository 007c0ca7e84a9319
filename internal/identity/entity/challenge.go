package entity

import "time"

// Registration is the pending signup payload held alongside a signup code
// until the code is verified. Password stays plaintext here and is hashed at
// account creation.
type Registration struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Gender      Gender
	DateOfBirth *time.Time
	Location    string
	Bio         string
}

// Challenge is a one-time code issued to an email address. A challenge with a
// Registration payload authorizes signup; without one it authorizes login.
type Challenge struct {
	Code         string
	Flow         ChallengeFlow
	ExpiresAt    time.Time
	Registration *Registration
}
