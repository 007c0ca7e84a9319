// Package event holds message contracts shared between modules.
package event

// UserRegisteredDestination is the subject used for new account events.
const UserRegisteredDestination = "user.registered"

// UserRegisteredConsumerNotification names the notification module's queue
// group on UserRegisteredDestination.
const UserRegisteredConsumerNotification = "notification.user-registered"

// UserRegisteredMessage is the payload published when a signup completes.
type UserRegisteredMessage struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
