package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

func TestCreateAdminUserHashesPassword(t *testing.T) {
	setupTestDB(t)

	user, err := CreateAdminUser("mike", "grill1234")
	require.NoError(t, err)
	assert.Equal(t, "mike", user.Username)
	assert.NotEqual(t, "grill1234", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("grill1234")))
}

func TestCreateAdminUserDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	_, err := CreateAdminUser("mike", "grill1234")
	require.NoError(t, err)

	_, err = CreateAdminUser("mike", "other-password")
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, config.DB.Model(&models.AdminUser{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateAdminUserBlankInputRejected(t *testing.T) {
	setupTestDB(t)

	_, err := CreateAdminUser("  ", "password")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = CreateAdminUser("mike", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	setupTestDB(t)
	_, err := CreateAdminUser("mike", "grill1234")
	require.NoError(t, err)

	user, err := Authenticate("mike", "grill1234")
	require.NoError(t, err)
	assert.Equal(t, "mike", user.Username)

	_, err = Authenticate("mike", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Authenticate("nobody", "grill1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAdminUser(t *testing.T) {
	setupTestDB(t)
	user, err := CreateAdminUser("mike", "grill1234")
	require.NoError(t, err)

	require.NoError(t, DeleteAdminUser(user.ID))
	assert.ErrorIs(t, DeleteAdminUser(user.ID), ErrNotFound)
}
