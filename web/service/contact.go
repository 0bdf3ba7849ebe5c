package service

import (
	"math"
	"net/http"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/logger"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/validation"

	"gorm.io/gorm"
)

type ContactService struct{}

// CheckContactExist returns the contact only when it exists AND belongs to
// username. Both cases fail with the same 404.
func (s *ContactService) CheckContactExist(id string, username string) (*model.Contact, error) {
	db := database.GetDB()

	contact := &model.Contact{}
	err := db.Model(&model.Contact{}).
		Where("id = ? AND username = ?", id, username).
		First(contact).
		Error
	if database.IsNotFound(err) {
		return nil, entity.NewApiError(http.StatusNotFound, "Contact not found")
	} else if err != nil {
		logger.Warning("contact lookup err:", err)
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Create(user *model.User, req *entity.CreateContactRequest) (*entity.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  user.Username,
	}

	db := database.GetDB()
	if err := db.Create(contact).Error; err != nil {
		return nil, err
	}

	return entity.ToContactResponse(contact), nil
}

func (s *ContactService) Get(user *model.User, id string) (*entity.ContactResponse, error) {
	contact, err := s.CheckContactExist(id, user.Username)
	if err != nil {
		return nil, err
	}
	return entity.ToContactResponse(contact), nil
}

// Update overwrites every validated field of the contact, a full replace
// rather than a partial merge.
func (s *ContactService) Update(user *model.User, req *entity.UpdateContactRequest) (*entity.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.CheckContactExist(req.Id, user.Username)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	db := database.GetDB()
	if err := db.Save(contact).Error; err != nil {
		return nil, err
	}

	return entity.ToContactResponse(contact), nil
}

func (s *ContactService) Delete(user *model.User, id string) error {
	contact, err := s.CheckContactExist(id, user.Username)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Delete(contact).Error
}

// Search pages through the caller's own contacts. Filters are conjunctive
// and only applied when the field is present; the name filter matches first
// or last name by substring.
func (s *ContactService) Search(user *model.User, req *entity.SearchContactRequest) (*entity.Pageable, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	db := database.GetDB()

	filter := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("username = ?", user.Username)
		if req.Name != "" {
			pattern := "%" + req.Name + "%"
			tx = tx.Where(db.Where("first_name LIKE ?", pattern).Or("last_name LIKE ?", pattern))
		}
		if req.Email != "" {
			tx = tx.Where("email LIKE ?", "%"+req.Email+"%")
		}
		if req.Phone != "" {
			tx = tx.Where("phone LIKE ?", "%"+req.Phone+"%")
		}
		return tx
	}

	var total int64
	if err := filter(db.Model(&model.Contact{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var contacts []model.Contact
	err := filter(db.Model(&model.Contact{})).
		Offset((req.Page - 1) * req.Size).
		Limit(req.Size).
		Find(&contacts).
		Error
	if err != nil {
		return nil, err
	}

	responses := make([]*entity.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, entity.ToContactResponse(&contacts[i]))
	}

	return &entity.Pageable{
		Data: responses,
		Paging: entity.Paging{
			CurrentPage: req.Page,
			TotalPage:   int(math.Ceil(float64(total) / float64(req.Size))),
			Size:        req.Size,
		},
	}, nil
}
