package service

import (
	"net/http"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/logger"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/validation"
)

type AddressService struct {
	contactService ContactService
}

// CheckAddressExist returns the address only when it exists under the given
// contact.
func (s *AddressService) CheckAddressExist(id string, contactId string) (*model.Address, error) {
	db := database.GetDB()

	address := &model.Address{}
	err := db.Model(&model.Address{}).
		Where("id = ? AND contact_id = ?", id, contactId).
		First(address).
		Error
	if database.IsNotFound(err) {
		return nil, entity.NewApiError(http.StatusNotFound, "Address is not found")
	} else if err != nil {
		logger.Warning("address lookup err:", err)
		return nil, err
	}
	return address, nil
}

// Create stores an address under a contact the acting user owns. The
// ownership check and the insert are separate statements; a contact deleted
// in between surfaces as a store error, not a broken row.
func (s *AddressService) Create(user *model.User, req *entity.CreateAddressRequest) (*entity.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contactService.CheckContactExist(req.ContactId, user.Username); err != nil {
		return nil, err
	}

	address := &model.Address{
		ContactId:  req.ContactId,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	db := database.GetDB()
	if err := db.Create(address).Error; err != nil {
		return nil, err
	}

	return entity.ToAddressResponse(address), nil
}

func (s *AddressService) Get(user *model.User, contactId string, addressId string) (*entity.AddressResponse, error) {
	if _, err := s.contactService.CheckContactExist(contactId, user.Username); err != nil {
		return nil, err
	}

	address, err := s.CheckAddressExist(addressId, contactId)
	if err != nil {
		return nil, err
	}

	return entity.ToAddressResponse(address), nil
}

// Update full-replaces the address fields after both the contact ownership
// and the address existence checks pass.
func (s *AddressService) Update(user *model.User, req *entity.UpdateAddressRequest) (*entity.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contactService.CheckContactExist(req.ContactId, user.Username); err != nil {
		return nil, err
	}

	address, err := s.CheckAddressExist(req.Id, req.ContactId)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode

	db := database.GetDB()
	if err := db.Save(address).Error; err != nil {
		return nil, err
	}

	return entity.ToAddressResponse(address), nil
}

func (s *AddressService) Delete(user *model.User, contactId string, addressId string) error {
	if _, err := s.contactService.CheckContactExist(contactId, user.Username); err != nil {
		return err
	}

	address, err := s.CheckAddressExist(addressId, contactId)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Delete(address).Error
}

// List returns every address of the contact in store order.
func (s *AddressService) List(user *model.User, contactId string) ([]*entity.AddressResponse, error) {
	if _, err := s.contactService.CheckContactExist(contactId, user.Username); err != nil {
		return nil, err
	}

	db := database.GetDB()

	var addresses []model.Address
	err := db.Model(&model.Address{}).
		Where("contact_id = ?", contactId).
		Find(&addresses).
		Error
	if err != nil {
		return nil, err
	}

	return entity.ToAddressResponses(addresses), nil
}
