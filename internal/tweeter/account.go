package tweeter

import "sync/atomic"

// Account is a member of a tweeter service.
type Account struct {
	name    string
	service *Service

	tweets atomic.Int64
	likes  atomic.Int64
}

func (a *Account) Name() string { return a.name }

// Tweets returns how many tweets from others the account received.
func (a *Account) Tweets() int64 { return a.tweets.Load() }

// Likes returns how many likes of others' tweets the account received.
func (a *Account) Likes() int64 { return a.likes.Load() }

func (a *Account) String() string { return "@" + a.name }

// OnTweet counts tweets from other accounts and likes every one of them.
func (a *Account) OnTweet(t Tweet) error {
	if t.Source() == a {
		return nil
	}
	a.tweets.Add(1)
	return a.service.Like(a, t)
}

// OnLike counts likes of tweets written by other accounts.
func (a *Account) OnLike(l Like) error {
	if l.Source() == a {
		return nil
	}
	a.likes.Add(1)
	return nil
}
