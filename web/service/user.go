// Package service implements the business logic of the contact API. Every
// operation follows the same sequence: validate the request, resolve the
// acting user, check ownership of the target row, hit the store, project the
// row into a response.
package service

import (
	"net/http"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/logger"
	"github.com/askardaffa/contact-api/util/crypto"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/validation"

	"github.com/google/uuid"
)

type UserService struct{}

// Register creates a new account. The username must be free; the password is
// stored as a bcrypt hash only.
func (s *UserService) Register(req *entity.RegisterUserRequest) (*entity.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	db := database.GetDB()

	var count int64
	err := db.Model(&model.User{}).
		Where("username = ?", req.Username).
		Count(&count).
		Error
	if err != nil {
		logger.Warning("register count err:", err)
		return nil, err
	}
	if count != 0 {
		return nil, entity.NewApiError(http.StatusBadRequest, "Username already exist")
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: hashedPassword,
		Name:     req.Name,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	return entity.ToUserResponse(user), nil
}

// Login verifies the credentials and rotates the session token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(req *entity.LoginUserRequest) (*entity.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	db := database.GetDB()

	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("username = ?", req.Username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, entity.NewApiError(http.StatusUnauthorized, "Username or password is wrong")
	} else if err != nil {
		logger.Warning("login lookup err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, req.Password) {
		return nil, entity.NewApiError(http.StatusUnauthorized, "Username or password is wrong")
	}

	token := uuid.NewString()
	err = db.Model(&model.User{}).
		Where("username = ?", user.Username).
		Update("token", token).
		Error
	if err != nil {
		return nil, err
	}

	response := entity.ToUserResponse(user)
	response.Token = token
	return response, nil
}

// Get projects the already-resolved session user.
func (s *UserService) Get(user *model.User) *entity.UserResponse {
	return entity.ToUserResponse(user)
}

// Update applies the provided fields to the acting user. A new password is
// re-hashed before it replaces the stored one.
func (s *UserService) Update(user *model.User, req *entity.UpdateUserRequest) (*entity.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hashedPassword, err := crypto.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	db := database.GetDB()
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}

	return entity.ToUserResponse(user), nil
}

// Logout nulls the session token, invalidating it for subsequent requests.
func (s *UserService) Logout(user *model.User) (*entity.UserResponse, error) {
	db := database.GetDB()

	err := db.Model(&model.User{}).
		Where("username = ?", user.Username).
		Update("token", nil).
		Error
	if err != nil {
		return nil, err
	}

	user.Token = nil
	return entity.ToUserResponse(user), nil
}

// FindByToken resolves a session token to its user. Used by the auth
// middleware; a miss means the request is unauthenticated.
func (s *UserService) FindByToken(token string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(&model.User{}).
		Where("token = ?", token).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
