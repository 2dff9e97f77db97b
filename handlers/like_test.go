package handlers_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"hashly/database"
	"hashly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The end-to-end scenario: alice posts, bob likes once, the second like is a
// no-op with a message.
func TestLikeOnlyOncePerUser(t *testing.T) {
	router := setupServer(t)

	alice := login(t, router, "alice", "secret")
	post := createPost(t, router, alice, "hello", "intro")
	id := strconv.Itoa(int(post.ID))

	bob := login(t, router, "bob", "hunter2")

	w := doForm(router, http.MethodPost, "/like/"+id, nil, bob)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "Post liked!", flashMessage(t, w))

	w = doForm(router, http.MethodPost, "/like/"+id, nil, bob)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "You already liked this post!", flashMessage(t, w))

	var count int64
	require.NoError(t, database.DB.Model(&models.Like{}).
		Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDifferentUsersCanLikeSamePost(t *testing.T) {
	router := setupServer(t)

	alice := login(t, router, "alice", "secret")
	post := createPost(t, router, alice, "popular", "hot")
	id := strconv.Itoa(int(post.ID))

	doForm(router, http.MethodPost, "/like/"+id, nil, alice)
	bob := login(t, router, "bob", "hunter2")
	doForm(router, http.MethodPost, "/like/"+id, nil, bob)

	var count int64
	require.NoError(t, database.DB.Model(&models.Like{}).
		Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLikeRedirectsToReferer(t *testing.T) {
	router := setupServer(t)

	alice := login(t, router, "alice", "secret")
	post := createPost(t, router, alice, "hello", "intro")
	id := strconv.Itoa(int(post.ID))

	req := newFormRequest(t, "/like/"+id, nil)
	req.Header.Set("Referer", "/hashtag/intro")
	req.AddCookie(alice)
	w := serve(router, req)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/hashtag/intro", w.Header().Get("Location"))
}

func TestAddComment(t *testing.T) {
	router := setupServer(t)

	alice := login(t, router, "alice", "secret")
	post := createPost(t, router, alice, "hello", "intro")
	id := strconv.Itoa(int(post.ID))

	w := doForm(router, http.MethodPost, "/comment/"+id, url.Values{"text": {"nice one"}}, alice)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, database.DB.Where("post_id = ?", post.ID).First(&comment).Error)
	assert.Equal(t, "nice one", comment.Text)

	w = doGet(router, "/home", alice)
	assert.Contains(t, w.Body.String(), "nice one")
}

func TestCommentRequiresText(t *testing.T) {
	router := setupServer(t)
	alice := login(t, router, "alice", "secret")
	post := createPost(t, router, alice, "hello", "intro")

	w := doForm(router, http.MethodPost, "/comment/"+strconv.Itoa(int(post.ID)), url.Values{}, alice)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The comment route does not look the post up first; sqlite without the
// foreign_keys pragma accepts the dangling row.
func TestCommentOnMissingPostIsAccepted(t *testing.T) {
	router := setupServer(t)
	alice := login(t, router, "alice", "secret")

	w := doForm(router, http.MethodPost, "/comment/999", url.Values{"text": {"shout"}}, alice)
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.Comment{}).
		Where("post_id = ?", 999).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
