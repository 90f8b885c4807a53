package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Jobserd12/medium-back/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	_, app := setupTestServer(t)
	registerTestUser(t, app, "lookedup", "lookedup@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/user/profile/lookedup", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	profile, _ := body["profile"].(map[string]any)
	require.NotNil(t, profile)
	assert.Equal(t, models.DefaultBio, profile["bio"])
	assert.Equal(t, false, body["is_following"])

	relationships, _ := body["relationships"].(map[string]any)
	require.NotNil(t, relationships)
	assert.Equal(t, float64(0), relationships["followers_count"])
}

func TestGetUserProfile_Unknown(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/user/profile/nobody", nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMyProfile(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "editor", "editor@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/user/profile", map[string]string{
		"bio":     "Writes about writing.",
		"country": "Norway",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "Writes about writing.", profile["bio"])
	assert.Equal(t, "Norway", profile["country"])

	// Changes stick
	resp = doJSON(t, app, http.MethodGet, "/api/user/profile/editor", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	profile = body["profile"].(map[string]any)
	assert.Equal(t, "Writes about writing.", profile["bio"])
}

func TestToggleFollow(t *testing.T) {
	_, app := setupTestServer(t)
	followerToken, followerID := registerTestUser(t, app, "follower", "follower@example.com")
	_, targetID := registerTestUser(t, app, "target", "target@example.com")

	path := fmt.Sprintf("/api/follow-toggle/%d", targetID)

	// Follow
	resp := doJSON(t, app, http.MethodPost, path, nil, followerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["is_following"])

	// Unfollow
	resp = doJSON(t, app, http.MethodPost, path, nil, followerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, false, body["is_following"])

	// Self-follow is always rejected
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/follow-toggle/%d", followerID), nil, followerToken)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Missing target
	resp = doJSON(t, app, http.MethodPost, "/api/follow-toggle/9999", nil, followerToken)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unauthenticated
	resp = doJSON(t, app, http.MethodPost, path, nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetRelationships(t *testing.T) {
	_, app := setupTestServer(t)
	followerToken, _ := registerTestUser(t, app, "follower", "follower@example.com")
	_, targetID := registerTestUser(t, app, "target", "target@example.com")

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/follow-toggle/%d", targetID), nil, followerToken)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/user/relationships/%d", targetID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["followers_count"])
	assert.Equal(t, float64(0), body["following_count"])

	followers, _ := body["followers"].([]any)
	require.Len(t, followers, 1)
	first := followers[0].(map[string]any)
	assert.Equal(t, "follower", first["username"])
}
