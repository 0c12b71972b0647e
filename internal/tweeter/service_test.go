package tweeter

import (
	"context"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincentAlen/observer/internal/config"
)

func quietLogger() log15.Logger {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	return logger
}

func TestWorld(t *testing.T) {
	const (
		people = 4
		tweets = 10
	)
	s := New(quietLogger())
	accounts, err := s.Populate(config.Default())
	require.NoError(t, err)
	require.Len(t, accounts, people)

	require.NoError(t, s.Run(context.Background(), accounts, tweets))

	stats := s.Stats()
	assert.Equal(t, int64(people*tweets), stats.Tweets)
	assert.Equal(t, int64(people*tweets*(people-1)), stats.Likes)

	for _, a := range accounts {
		assert.Equal(t, int64(tweets*(people-1)), a.Tweets(), a.Name())
		switch a.Name() {
		case "emma", "beth":
			assert.Equal(t, int64(tweets*(people-1)*(people-1)), a.Likes(), a.Name())
		default:
			assert.Zero(t, a.Likes(), a.Name())
		}
	}
}

func TestOwnTweetsAreIgnored(t *testing.T) {
	s := New(quietLogger())
	ann, err := s.Join("ann")
	require.NoError(t, err)
	require.NoError(t, s.AddLiker(ann))

	require.NoError(t, s.Tweet(ann, "hello"))
	assert.Zero(t, ann.Tweets())
	assert.Zero(t, ann.Likes())
	assert.Equal(t, Stats{Tweets: 1}, s.Stats())
}

func TestLeave(t *testing.T) {
	s := New(quietLogger())
	ann, err := s.Join("ann")
	require.NoError(t, err)
	ben, err := s.Join("ben")
	require.NoError(t, err)
	require.NoError(t, s.AddLiker(ben))

	require.NoError(t, s.Tweet(ann, "one"))
	assert.Equal(t, int64(1), ben.Tweets())

	s.Leave(ben)
	require.NoError(t, s.Tweet(ann, "two"))
	assert.Equal(t, int64(1), ben.Tweets())
	assert.Equal(t, Stats{Tweets: 2, Likes: 1}, s.Stats())
}

func TestTweetRejectsNilAccount(t *testing.T) {
	s := New(quietLogger())
	assert.Error(t, s.Tweet(nil, "ghost"))
}

func TestRunHonoursCancelledContext(t *testing.T) {
	s := New(quietLogger())
	accounts, err := s.Populate(config.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Run(ctx, accounts, 5), context.Canceled)
	assert.Zero(t, s.Stats().Tweets)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
