package service

import (
	"testing"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommunityFixture(t *testing.T) (*gorm.DB, *CommunityService, *model.User) {
	t.Helper()
	env := newTestEnv(t)
	community := NewCommunityService(repository.NewCommunityRepository(env.DB))

	author := &model.User{Name: "Sam", Email: "sam@example.com", Password: "x", Role: model.RoleUser}
	require.NoError(t, env.DB.Create(author).Error)
	return env.DB, community, author
}

func TestShareAndFetchLink(t *testing.T) {
	_, community, author := newCommunityFixture(t)

	link, err := community.ShareLink(author.ID, ShareLinkRequest{
		Title: "Holland Codes explained",
		URL:   "https://example.com/holland-codes",
		Tags:  "riasec,careers",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, author.ID, link.AuthorID)

	fetched, err := community.GetLink(link.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Views)

	_, err = community.GetLink("no-such-id")
	assert.ErrorIs(t, err, util.ErrLinkNotFound)
}

func TestCommentThread(t *testing.T) {
	db, community, author := newCommunityFixture(t)

	other := &model.User{Name: "Kim", Email: "kim@example.com", Password: "x", Role: model.RoleUser}
	require.NoError(t, db.Create(other).Error)

	link, err := community.ShareLink(author.ID, ShareLinkRequest{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	parent, err := community.AddComment(link.ID, other.ID, CommentRequest{Content: "useful, thanks"})
	require.NoError(t, err)

	reply, err := community.AddComment(link.ID, author.ID, CommentRequest{Content: "glad it helped", ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)

	bogus := "missing-parent"
	_, err = community.AddComment(link.ID, author.ID, CommentRequest{Content: "x", ParentID: &bogus})
	assert.ErrorIs(t, err, util.ErrCommentNotFound)

	comments, err := community.ListComments(link.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestDeleteLinkPermissions(t *testing.T) {
	db, community, author := newCommunityFixture(t)

	stranger := &model.User{Name: "Eve", Email: "eve@example.com", Password: "x", Role: model.RoleUser}
	require.NoError(t, db.Create(stranger).Error)

	link, err := community.ShareLink(author.ID, ShareLinkRequest{Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	strangerClaims := &util.Claims{UserID: stranger.ID, Role: model.RoleUser}
	assert.ErrorIs(t, community.DeleteLink(link.ID, strangerClaims), util.ErrPermissionDenied)

	adminClaims := &util.Claims{UserID: stranger.ID, Role: model.RoleAdmin}
	assert.NoError(t, community.DeleteLink(link.ID, adminClaims))

	_, err = community.GetLink(link.ID)
	assert.ErrorIs(t, err, util.ErrLinkNotFound)
}
