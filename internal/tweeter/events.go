package tweeter

import "github.com/vincentAlen/observer"

// Tweet is fired when an account posts. Its source is the author.
type Tweet struct {
	observer.Object[*Account]
	Text string
}

func (Tweet) Kind() observer.Kind { return "tweet" }

// Like is fired when an account likes a tweet. Its source is the
// author of the liked tweet.
type Like struct {
	observer.Object[*Account]
	By    *Account
	Tweet Tweet
}

func (Like) Kind() observer.Kind { return "like" }
