package entity

import "time"

type Address struct {
	Street  string
	City    string
	State   string
	Country string
	ZipCode string
}

type User struct {
	ID          string
	Username    string
	Email       string
	FullName    string
	PhoneNumber string
	Role        Role
	Address     *Address
	Enabled     bool
	LastLogin   *time.Time
	CreatedAt   time.Time
}
