package service

import (
	"testing"

	"career_guidance_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentQuoteSeedsDefault(t *testing.T) {
	env := newTestEnv(t)
	quotes := NewQuoteService(repository.NewQuoteRepository(env.DB))

	quote, err := quotes.GetCurrentQuote()
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.NotEmpty(t, quote.Content)
	assert.True(t, quote.IsCurrentlyUsed)
}

func TestSwitchQuote(t *testing.T) {
	env := newTestEnv(t)
	quotes := NewQuoteService(repository.NewQuoteRepository(env.DB))

	created, err := quotes.CreateQuote(QuoteRequest{Content: "Do the work.", Author: "Anonymous"})
	require.NoError(t, err)

	require.NoError(t, quotes.SwitchToQuote(created.ID))

	current, err := quotes.GetCurrentQuote()
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)
}

func TestCannotDisableLastEnabledQuote(t *testing.T) {
	env := newTestEnv(t)
	repo := repository.NewQuoteRepository(env.DB)
	quotes := NewQuoteService(repo)

	// Reduce the pool to a single enabled quote.
	all, err := quotes.GetAllQuotes()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for _, q := range all[1:] {
		q.IsEnabled = false
		require.NoError(t, repo.Update(q))
	}
	require.NoError(t, repo.SetCurrent(all[0].ID))

	err = quotes.UpdateQuote(all[0].ID, all[0].Content, all[0].Author, false)
	assert.Error(t, err)

	err = quotes.DeleteQuote(all[0].ID)
	assert.Error(t, err)
}
