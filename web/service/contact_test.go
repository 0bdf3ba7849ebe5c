package service

import (
	"fmt"
	"testing"

	"github.com/askardaffa/contact-api/database"
	"github.com/askardaffa/contact-api/database/model"
	"github.com/askardaffa/contact-api/web/entity"
	"github.com/askardaffa/contact-api/web/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateAndGet(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	user := registerTestUser(t, "test")

	created := createTestContact(t, user)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "Askar", created.FirstName)
	assert.Equal(t, "Daffa", created.LastName)
	assert.Equal(t, "askar001@gmail.com", created.Email)
	assert.Equal(t, "08952525212", created.Phone)

	got, err := contactService.Get(user, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = contactService.Get(user, "does-not-exist")
	requireNotFound(t, err)
}

func TestContactOwnership(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	owner := registerTestUser(t, "owner")
	other := registerTestUser(t, "other")

	contact := createTestContact(t, owner)

	// another user's id is indistinguishable from a missing one
	_, err := contactService.Get(other, contact.Id)
	requireNotFound(t, err)

	_, err = contactService.Update(other, &entity.UpdateContactRequest{
		Id:        contact.Id,
		FirstName: "Hijacked",
	})
	requireNotFound(t, err)

	err = contactService.Delete(other, contact.Id)
	requireNotFound(t, err)

	// the row is untouched
	got, err := contactService.Get(owner, contact.Id)
	require.NoError(t, err)
	assert.Equal(t, "Askar", got.FirstName)
}

func TestContactUpdate(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	user := registerTestUser(t, "test")
	contact := createTestContact(t, user)

	// full replace: omitted optional fields are cleared
	updated, err := contactService.Update(user, &entity.UpdateContactRequest{
		Id:        contact.Id,
		FirstName: "Budi",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi", updated.FirstName)
	assert.Empty(t, updated.LastName)
	assert.Empty(t, updated.Email)
	assert.Empty(t, updated.Phone)

	_, err = contactService.Update(user, &entity.UpdateContactRequest{Id: "not-a-uuid", FirstName: "x"})
	_, ok := err.(*validation.ValidationError)
	require.True(t, ok)
}

func TestContactDelete(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	user := registerTestUser(t, "test")
	contact := createTestContact(t, user)

	require.NoError(t, contactService.Delete(user, contact.Id))

	var count int64
	database.GetDB().Model(&model.Contact{}).Count(&count)
	assert.Equal(t, int64(0), count)

	err := contactService.Delete(user, contact.Id)
	requireNotFound(t, err)
}

func TestContactSearch(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	user := registerTestUser(t, "test")
	other := registerTestUser(t, "other")

	for i := 0; i < 15; i++ {
		_, err := contactService.Create(user, &entity.CreateContactRequest{
			FirstName: fmt.Sprintf("first%d", i),
			LastName:  fmt.Sprintf("last%d", i),
			Email:     fmt.Sprintf("mail%d@example.com", i),
			Phone:     fmt.Sprintf("0812%d", i),
		})
		require.NoError(t, err)
	}
	createTestContact(t, other)

	// no filters: everything owned by the caller, paginated
	page, err := contactService.Search(user, &entity.SearchContactRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, entity.Paging{CurrentPage: 1, TotalPage: 2, Size: 10}, page.Paging)

	page, err = contactService.Search(user, &entity.SearchContactRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)

	// name filter matches both first and last name by substring
	page, err = contactService.Search(user, &entity.SearchContactRequest{Name: "first1", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 6) // first1, first10..first14

	page, err = contactService.Search(user, &entity.SearchContactRequest{Name: "last3", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	// email and phone filters
	page, err = contactService.Search(user, &entity.SearchContactRequest{Email: "mail7", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	page, err = contactService.Search(user, &entity.SearchContactRequest{Phone: "0812", Page: 1, Size: 100})
	require.NoError(t, err)
	assert.Len(t, page.Data, 15)

	// filters are conjunctive
	page, err = contactService.Search(user, &entity.SearchContactRequest{Name: "first1", Email: "mail12", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	// no matches yields an empty page with total_page 0
	page, err = contactService.Search(user, &entity.SearchContactRequest{Name: "missing", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Paging.TotalPage)
}

func TestContactSearchBeyondLastPage(t *testing.T) {
	setup(t)
	defer teardown()

	contactService := ContactService{}
	user := registerTestUser(t, "test")
	createTestContact(t, user)

	page, err := contactService.Search(user, &entity.SearchContactRequest{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, entity.Paging{CurrentPage: 2, TotalPage: 1, Size: 1}, page.Paging)
}
