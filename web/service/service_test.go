package service

import (
	"net/http"
	"os"
	"testing"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/web/entity"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	dbPath := "test.db"
	os.Remove(dbPath)
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

// registerTestUser creates an account and returns the stored row.
func registerTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	userService := UserService{}
	_, err := userService.Register(&entity.RegisterUserRequest{
		Username: username,
		Password: "rahasia",
		Name:     username,
	})
	require.NoError(t, err)

	user := &model.User{}
	err = database.GetDB().Where("username = ?", username).First(user).Error
	require.NoError(t, err)
	return user
}

// createTestContact stores a contact owned by user.
func createTestContact(t *testing.T, user *model.User) *entity.ContactResponse {
	t.Helper()
	contactService := ContactService{}
	contact, err := contactService.Create(user, &entity.CreateContactRequest{
		FirstName: "Askar",
		LastName:  "Daffa",
		Email:     "askar001@gmail.com",
		Phone:     "08952525212",
	})
	require.NoError(t, err)
	return contact
}

// requireApiError asserts that err is an ApiError with the given status.
func requireApiError(t *testing.T, err error, status int) *entity.ApiError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*entity.ApiError)
	require.True(t, ok, "expected *entity.ApiError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	requireApiError(t, err, http.StatusNotFound)
}
