// Package model defines the persisted records of the contact API.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account. Token is the opaque session credential: set on login,
// nulled on logout.
type User struct {
	Username string  `json:"username" gorm:"primaryKey;size:100"`
	Password string  `json:"-" gorm:"size:100;not null"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	Token    *string `json:"-" gorm:"size:100"`
}

func (User) TableName() string {
	return "users"
}

// Contact belongs to the user whose username is stored on it.
type Contact struct {
	Id        string `json:"id" gorm:"primaryKey;size:36"`
	FirstName string `json:"firstName" gorm:"column:first_name;size:100;not null"`
	LastName  string `json:"lastName" gorm:"column:last_name;size:100"`
	Email     string `json:"email" gorm:"size:100"`
	Phone     string `json:"phone" gorm:"size:100"`
	Username  string `json:"-" gorm:"size:100;index;not null"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(_ *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

// Address is a sub-record of a contact.
type Address struct {
	Id         string `json:"id" gorm:"primaryKey;size:36"`
	ContactId  string `json:"-" gorm:"column:contact_id;size:36;index;not null"`
	Street     string `json:"street" gorm:"size:100"`
	City       string `json:"city" gorm:"size:100"`
	Province   string `json:"province" gorm:"size:100"`
	Country    string `json:"country" gorm:"size:100;not null"`
	PostalCode string `json:"postal_code" gorm:"column:postal_code;size:100;not null"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a *Address) BeforeCreate(_ *gorm.DB) error {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	return nil
}
