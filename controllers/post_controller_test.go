package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkartiks/Simple-Blog-RestAPI/models"
)

func TestCreateAndGetPost(t *testing.T) {
	r, _ := setupRouter(t)
	token, userID := signupAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodPost, "/posts", gin.H{
		"title": "First Post",
		"body":  "Hello, world.",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, "First Post", created["title"])
	assert.Equal(t, "Hello, world.", created["body"])
	assert.Equal(t, float64(userID), created["user_id"])
	assert.Equal(t, float64(0), created["like_count"])

	postID := created["id"].(float64)
	w = performRequest(t, r, http.MethodGet, "/posts/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decodeBody(t, w)
	assert.Equal(t, postID, fetched["id"])
	assert.Equal(t, "First Post", fetched["title"])
	assert.Equal(t, "Hello, world.", fetched["body"])
}

func TestCreatePostValidation(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodPost, "/posts", gin.H{"body": "no title"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostsRequireAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodGet, "/posts", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodPost, "/posts", gin.H{
		"title": "x", "body": "y",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPosts(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")

	createPost(t, r, token, "One", "first")
	createPost(t, r, token, "Two", "second")

	w := performRequest(t, r, http.MethodGet, "/posts", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	posts := decodeList(t, w)
	require.Len(t, posts, 2)
	assert.Equal(t, "One", posts[0]["title"])
	assert.Equal(t, "Two", posts[1]["title"])
}

func TestGetMissingPost(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodGet, "/posts/999", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePost(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")
	postID := createPost(t, r, token, "Old Title", "Old body")

	// A like before the update must survive it.
	w := performRequest(t, r, http.MethodPost, "/posts/1/like", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodPut, "/posts/1", gin.H{
		"title": "New Title",
		"body":  "New body",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, float64(postID), updated["id"])
	assert.Equal(t, "New Title", updated["title"])
	assert.Equal(t, "New body", updated["body"])
	assert.Equal(t, float64(1), updated["like_count"])
}

func TestUpdatePostNonOwner(t *testing.T) {
	r, _ := setupRouter(t)
	ownerToken, _ := signupAndLogin(t, r, "alice")
	otherToken, _ := signupAndLogin(t, r, "bob")
	createPost(t, r, ownerToken, "Alice's Post", "body")

	w := performRequest(t, r, http.MethodPut, "/posts/1", gin.H{
		"title": "Hijacked",
		"body":  "body",
	}, otherToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Payload validation still comes first.
	w = performRequest(t, r, http.MethodPut, "/posts/1", gin.H{"body": "no title"}, otherToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingPost(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodPut, "/posts/42", gin.H{
		"title": "x", "body": "y",
	}, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostCascades(t *testing.T) {
	r, db := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")
	createPost(t, r, token, "Doomed", "body")

	w := performRequest(t, r, http.MethodPost, "/posts/1/like", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodPost, "/posts/1/comments", gin.H{"body": "a comment"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodPost, "/comments/1/replies", gin.H{"body": "a reply"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/posts/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var likes, comments, replies, posts int64
	db.Model(&models.Like{}).Count(&likes)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Reply{}).Count(&replies)
	db.Model(&models.Post{}).Count(&posts)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
	assert.Zero(t, replies)
	assert.Zero(t, posts)
}

func TestDeletePostNonOwner(t *testing.T) {
	r, db := setupRouter(t)
	ownerToken, _ := signupAndLogin(t, r, "alice")
	otherToken, _ := signupAndLogin(t, r, "bob")
	createPost(t, r, ownerToken, "Alice's Post", "body")

	w := performRequest(t, r, http.MethodDelete, "/posts/1", nil, otherToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPostsByUsername(t *testing.T) {
	r, _ := setupRouter(t)
	aliceToken, _ := signupAndLogin(t, r, "alice")
	bobToken, _ := signupAndLogin(t, r, "bob")

	createPost(t, r, aliceToken, "Alice One", "body")
	createPost(t, r, bobToken, "Bob One", "body")
	createPost(t, r, aliceToken, "Alice Two", "body")

	w := performRequest(t, r, http.MethodGet, "/posts/by-user/alice", nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	posts := decodeList(t, w)
	require.Len(t, posts, 2)
	assert.Equal(t, "Alice One", posts[0]["title"])
	assert.Equal(t, "Alice Two", posts[1]["title"])
}

func TestPostsByUnknownUsername(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := signupAndLogin(t, r, "alice")

	w := performRequest(t, r, http.MethodGet, "/posts/by-user/nobody", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}
