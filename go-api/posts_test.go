package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*postService, Store, string, string) {
	t.Helper()
	st := newMemStore()
	author := seedUser(t, st, "Jess Dev", "jess@example.com")
	reader := seedUser(t, st, "Sam Ops", "sam@example.com")
	return &postService{store: st}, st, author, reader
}

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	svc, _, author, _ := newPostService(t)

	p, err := svc.Create(author, PostInput{Text: "first post"})
	require.NoError(t, err)

	assert.Equal(t, author, p.UserID)
	assert.Equal(t, "Jess Dev", p.Name)
	assert.NotEmpty(t, p.Avatar)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)
}

func TestCreatePostRequiresText(t *testing.T) {
	svc, st, author, _ := newPostService(t)

	_, err := svc.Create(author, PostInput{Text: "   "})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	all, err := st.Posts()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListPostsNewestFirst(t *testing.T) {
	svc, _, author, _ := newPostService(t)

	_, err := svc.Create(author, PostInput{Text: "older"})
	require.NoError(t, err)
	_, err = svc.Create(author, PostInput{Text: "newer"})
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].Text)
	assert.Equal(t, "older", all[1].Text)
}

func TestLikeIsUniquePerUser(t *testing.T) {
	svc, _, author, reader := newPostService(t)
	p, err := svc.Create(author, PostInput{Text: "like me"})
	require.NoError(t, err)

	likes, err := svc.Like(reader, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = svc.Like(reader, p.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	got, err := svc.ByID(p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, 1)
}

func TestUnlike(t *testing.T) {
	svc, _, author, reader := newPostService(t)
	p, err := svc.Create(author, PostInput{Text: "like me"})
	require.NoError(t, err)

	_, err = svc.Unlike(reader, p.ID)
	assert.ErrorIs(t, err, ErrNotLiked)

	_, err = svc.Like(reader, p.ID)
	require.NoError(t, err)
	likes, err := svc.Unlike(reader, p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	svc, _, author, reader := newPostService(t)
	p, err := svc.Create(author, PostInput{Text: "mine"})
	require.NoError(t, err)

	err = svc.Delete(reader, p.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.ByID(p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(author, p.ID))
	_, err = svc.ByID(p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentLifecycle(t *testing.T) {
	svc, _, author, reader := newPostService(t)
	p, err := svc.Create(author, PostInput{Text: "discuss"})
	require.NoError(t, err)

	_, err = svc.AddComment(reader, p.ID, PostInput{Text: ""})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	comments, err := svc.AddComment(reader, p.ID, PostInput{Text: "nice post"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Sam Ops", comments[0].Name)
	assert.NotEmpty(t, comments[0].ID)

	// only the comment's author may remove it
	_, err = svc.RemoveComment(author, p.ID, comments[0].ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	got, err := svc.RemoveComment(reader, p.ID, comments[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRemoveCommentUnknownID(t *testing.T) {
	svc, _, author, _ := newPostService(t)
	p, err := svc.Create(author, PostInput{Text: "discuss"})
	require.NoError(t, err)

	_, err = svc.RemoveComment(author, p.ID, "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestPostByMalformedID(t *testing.T) {
	svc, _, _, _ := newPostService(t)

	_, err := svc.ByID("not-a-uuid")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
