package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkartiks/Simple-Blog-RestAPI/models"
)

func TestRegisterUser(t *testing.T) {
	r, db := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users/add", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "password")

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterShortPassword(t *testing.T) {
	r, db := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users/add", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "short",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users/add", gin.H{
		"email": "alice@example.com",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := setupRouter(t)

	payload := gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	}
	w := performRequest(t, r, http.MethodPost, "/users/add", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	payload["email"] = "other@example.com"
	w = performRequest(t, r, http.MethodPost, "/users/add", payload, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "already exists")
}

func TestListUsers(t *testing.T) {
	r, _ := setupRouter(t)

	signupAndLogin(t, r, "alice")
	signupAndLogin(t, r, "bob")

	w := performRequest(t, r, http.MethodGet, "/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	users := decodeList(t, w)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["username"])
	assert.Equal(t, "bob", users[1]["username"])
	for _, user := range users {
		assert.NotContains(t, user, "password")
	}
}
