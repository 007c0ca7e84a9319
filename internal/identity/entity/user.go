package entity

import "time"

type User struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Gender      Gender
	DateOfBirth *time.Time
	Role        Role
	Location    string
	Bio         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserLoginInfo carries only what password verification needs.
type UserLoginInfo struct {
	ID       string
	Name     string
	Email    string
	Password string // hashed
}

type NewUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Gender       Gender
	DateOfBirth  *time.Time
	Role         Role
	Location     string
	Bio          string
}
