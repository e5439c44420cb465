package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_FeedAndByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	ann := createUser(t, db, "ann", portfolio.Free)
	bob := createUser(t, db, "bob", portfolio.Free)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	posts := []*models.Post{
		{UserID: ann.ID, ContentText: "first", CreatedAt: base},
		{UserID: bob.ID, ContentText: "second", ContentImage: "https://cdn.example.com/a.png", CreatedAt: base.Add(time.Minute)},
		{UserID: ann.ID, ContentText: "third", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, p := range posts {
		require.NoError(t, repo.Create(ctx, p))
	}

	feed, err := repo.Feed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].ContentText)
	assert.Equal(t, "second", feed[1].ContentText)
	assert.Equal(t, "first", feed[2].ContentText)
	require.NotNil(t, feed[1].Author)
	assert.Equal(t, "bob", feed[1].Author.Username)

	limited, err := repo.Feed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "third", limited[0].ContentText)

	annPosts, err := repo.ByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, annPosts, 2)
	assert.Equal(t, "third", annPosts[0].ContentText)
	assert.Equal(t, "first", annPosts[1].ContentText)
}
