package entity

import "github.com/askardaffa/contact-api/database/model"

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=100"`
}

type UpdateContactRequest struct {
	Id        string `json:"id" validate:"required,uuid"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=100"`
}

// SearchContactRequest filters are AND-ed; only present fields apply. Name
// matches first or last name by substring.
type SearchContactRequest struct {
	Name  string `form:"name" validate:"omitempty,max=100"`
	Email string `form:"email" validate:"omitempty,max=100"`
	Phone string `form:"phone" validate:"omitempty,max=100"`
	Page  int    `form:"page,default=1" validate:"min=1"`
	Size  int    `form:"size,default=10" validate:"min=1"`
}

type ContactResponse struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func ToContactResponse(contact *model.Contact) *ContactResponse {
	return &ContactResponse{
		Id:        contact.Id,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
