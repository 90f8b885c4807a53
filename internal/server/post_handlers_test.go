package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_DefaultsToDraft(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	post := createTestPost(t, app, token, "My Draft", "")
	assert.Equal(t, "Draft", post["status"])
	assert.Equal(t, "my-draft", post["slug"])
}

func TestCreatePost_Validation(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing title", map[string]string{"content": "c"}},
		{"missing content", map[string]string{"title": "T"}},
		{"bad status", map[string]string{"title": "T", "content": "c", "status": "Gone"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/dashboard/post-create", tt.body, token)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreatePost_SameTitleGetsDistinctSlugs(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	slugs := map[string]bool{}
	for i := 0; i < 3; i++ {
		post := createTestPost(t, app, token, "Hello World", "Published")
		slug, _ := post["slug"].(string)
		require.NotEmpty(t, slug)
		assert.False(t, slugs[slug], "slug %q repeated", slug)
		slugs[slug] = true
	}
}

func TestPostDetail_PublishedOnly(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	draft := createTestPost(t, app, token, "Hidden Draft", "")
	published := createTestPost(t, app, token, "Visible Post", "Published")

	resp := doJSON(t, app, http.MethodGet, "/api/post/detail/"+draft["slug"].(string), nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/post/detail/"+published["slug"].(string), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	post, _ := body["post"].(map[string]any)
	require.NotNil(t, post)
	assert.Equal(t, "Visible Post", post["title"])
	assert.Equal(t, false, body["is_liked"])
}

func TestIncrementView(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	draft := createTestPost(t, app, token, "Draft Views", "")
	published := createTestPost(t, app, token, "Counted Views", "Published")
	slug := published["slug"].(string)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/post/increment-view/"+slug, nil, "")
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/post/detail/"+slug, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	post := body["post"].(map[string]any)
	assert.Equal(t, float64(2), post["views"])

	// Draft posts never accumulate views
	resp = doJSON(t, app, http.MethodPost, "/api/post/increment-view/"+draft["slug"].(string), nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/post/increment-view/no-such-slug", nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdatePostStatus_PublishesDraft(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	draft := createTestPost(t, app, token, "Soon Published", "")
	id := uint(draft["id"].(float64))

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/dashboard/post-status/%d", id),
		map[string]string{"status": "Published"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	post := body["post"].(map[string]any)
	assert.Equal(t, "Published", post["status"])
	assert.NotNil(t, post["published_at"])

	resp = doJSON(t, app, http.MethodGet, "/api/post/detail/"+draft["slug"].(string), nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdatePost_OtherAuthorNotFound(t *testing.T) {
	_, app := setupTestServer(t)
	ownerToken, _ := registerTestUser(t, app, "owner", "owner@example.com")
	otherToken, _ := registerTestUser(t, app, "other", "other@example.com")

	post := createTestPost(t, app, ownerToken, "Mine Alone", "Published")
	id := uint(post["id"].(float64))

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/dashboard/post/%d", id),
		map[string]string{"title": "Hijacked"}, otherToken)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePost(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	post := createTestPost(t, app, token, "Short Lived", "Published")
	id := uint(post["id"].(float64))

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/dashboard/post/%d", id), nil, token)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/post/detail/"+post["slug"].(string), nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPosts_ListsPublishedOnly(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	createTestPost(t, app, token, "Listed One", "Published")
	createTestPost(t, app, token, "Listed Two", "Published")
	createTestPost(t, app, token, "Unlisted Draft", "")

	resp := doJSON(t, app, http.MethodGet, "/api/post/lists", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	posts, _ := body["posts"].([]any)
	assert.Len(t, posts, 2)
}

func TestSearchPosts(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	createTestPost(t, app, token, "Gardening Basics", "Published")
	createTestPost(t, app, token, "Advanced Cooking", "Published")

	resp := doJSON(t, app, http.MethodGet, "/api/post/search?q=garden", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	posts, _ := body["posts"].([]any)
	require.Len(t, posts, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/post/search", nil, "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPopularPosts(t *testing.T) {
	_, app := setupTestServer(t)
	token, _ := registerTestUser(t, app, "author", "author@example.com")

	createTestPost(t, app, token, "Quiet Post", "Published")
	viral := createTestPost(t, app, token, "Viral Post", "Published")

	likeResp := doJSON(t, app, http.MethodPost, "/api/post/like-post",
		map[string]any{"post_id": uint(viral["id"].(float64))}, token)
	_ = likeResp.Body.Close()
	require.Equal(t, http.StatusCreated, likeResp.StatusCode)

	resp := doJSON(t, app, http.MethodGet, "/api/post/list-popular", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	posts, _ := body["posts"].([]any)
	require.Len(t, posts, 2)
	first := posts[0].(map[string]any)
	assert.Equal(t, "Viral Post", first["title"])
}

func TestDashboard(t *testing.T) {
	_, app := setupTestServer(t)
	token, userID := registerTestUser(t, app, "author", "author@example.com")
	otherToken, _ := registerTestUser(t, app, "other", "other@example.com")

	createTestPost(t, app, token, "Dash Draft", "")
	createTestPost(t, app, token, "Dash Published", "Published")

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/posts/%d", userID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	posts, _ := body["posts"].([]any)
	assert.Len(t, posts, 2, "dashboard includes drafts")

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/stats/%d", userID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.Equal(t, float64(2), stats["posts"])

	// Another user cannot read someone else's dashboard
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/posts/%d", userID), nil, otherToken)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
