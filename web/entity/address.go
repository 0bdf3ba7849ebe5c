package entity

import "github.com/askardaffa/contact-api/database/model"

type CreateAddressRequest struct {
	ContactId  string `json:"-" validate:"required,uuid"`
	Street     string `json:"street" validate:"omitempty,max=100"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=100"`
}

type UpdateAddressRequest struct {
	Id         string `json:"-" validate:"required,uuid"`
	ContactId  string `json:"-" validate:"required,uuid"`
	Street     string `json:"street" validate:"omitempty,max=100"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=100"`
}

type AddressResponse struct {
	Id         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func ToAddressResponse(address *model.Address) *AddressResponse {
	return &AddressResponse{
		Id:         address.Id,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func ToAddressResponses(addresses []model.Address) []*AddressResponse {
	responses := make([]*AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, ToAddressResponse(&addresses[i]))
	}
	return responses
}
