// Package mail defines the contracts for sending email messages.
//
// The rest of the application works with the Mail interface and Message
// payload so it stays independent from the delivery mechanism; the concrete
// SMTP implementation lives alongside.
package mail
