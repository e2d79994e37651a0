package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/models"
)

func TestSubmitContactPersists(t *testing.T) {
	setupTestDB(t)

	msg := models.ContactMessage{Name: "Alex", Email: "alex@example.com", Message: "Do you cater?"}
	require.NoError(t, SubmitContact(&msg))
	assert.NotZero(t, msg.ID)

	messages, err := ListContacts()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Do you cater?", messages[0].Message)
}

func TestListContactsNewestFirst(t *testing.T) {
	setupTestDB(t)

	older := models.ContactMessage{Name: "First", Email: "a@example.com", Message: "hi", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.ContactMessage{Name: "Second", Email: "b@example.com", Message: "hello", CreatedAt: time.Now()}
	require.NoError(t, SubmitContact(&older))
	require.NoError(t, SubmitContact(&newer))

	messages, err := ListContacts()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Second", messages[0].Name)
	assert.Equal(t, "First", messages[1].Name)
}

func TestDeleteContactNotFound(t *testing.T) {
	setupTestDB(t)

	assert.ErrorIs(t, DeleteContact(42), ErrNotFound)
}
