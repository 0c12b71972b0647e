// Package tweeter is a small social network built on observer listeners:
// accounts follow every tweet, like what others post, and likers are
// notified of every like.
package tweeter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/inconshreveable/log15"
	"github.com/vincentAlen/observer"
	"github.com/vincentAlen/observer/internal/config"
	"golang.org/x/sync/errgroup"
)

// Service routes tweets and likes between accounts.
type Service struct {
	listeners *observer.Listeners
	logger    log15.Logger

	tweets atomic.Int64
	likes  atomic.Int64
}

// Stats are the totals sent through a service.
type Stats struct {
	Tweets int64
	Likes  int64
}

var (
	defaultOnce    sync.Once
	defaultService *Service
)

// Default returns the process-wide service, creating it on first use.
func Default() *Service {
	defaultOnce.Do(func() {
		defaultService = New(log15.Root())
		defaultService.logger.Info("default service created")
	})
	return defaultService
}

// New creates a service logging to logger.
func New(logger log15.Logger) *Service {
	return &Service{
		listeners: observer.New(observer.WithLogger(logger)),
		logger:    logger.New("service", "tweeter"),
	}
}

// Join creates an account following every tweet.
func (s *Service) Join(name string) (*Account, error) {
	a := &Account{name: name, service: s}
	if _, err := observer.AddListener(s.listeners, a, (*Account).OnTweet); err != nil {
		return nil, err
	}
	s.logger.Debug("account joined", "account", name)
	return a, nil
}

// AddLiker subscribes a to every like.
func (s *Service) AddLiker(a *Account) error {
	_, err := observer.AddListener(s.listeners, a, (*Account).OnLike)
	return err
}

// Leave stops all notifications to a.
func (s *Service) Leave(a *Account) {
	observer.RemoveListener(s.listeners, a, (*Account).OnTweet)
	observer.RemoveListener(s.listeners, a, (*Account).OnLike)
	s.logger.Debug("account left", "account", a.name)
}

// Tweet posts text on behalf of a.
func (s *Service) Tweet(a *Account, text string) error {
	src, err := observer.NewObject(a)
	if err != nil {
		return err
	}
	if err := s.listeners.FireEvent(Tweet{Object: src, Text: text}); err != nil {
		return err
	}
	s.tweets.Add(1)
	return nil
}

// Like records that a likes t.
func (s *Service) Like(a *Account, t Tweet) error {
	src, err := observer.NewObject(t.Source())
	if err != nil {
		return err
	}
	if err := s.listeners.FireEvent(Like{Object: src, By: a, Tweet: t}); err != nil {
		return err
	}
	s.likes.Add(1)
	return nil
}

// Stats returns the totals sent so far.
func (s *Service) Stats() Stats {
	return Stats{Tweets: s.tweets.Load(), Likes: s.likes.Load()}
}

// Populate creates the accounts described by cfg.
func (s *Service) Populate(cfg config.Config) ([]*Account, error) {
	accounts := make([]*Account, 0, len(cfg.Accounts))
	for _, ac := range cfg.Accounts {
		a, err := s.Join(ac.Name)
		if err != nil {
			return nil, err
		}
		if ac.Liker {
			if err := s.AddLiker(a); err != nil {
				return nil, err
			}
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// Run makes every account send tweets concurrently and waits for all
// of them. The first failure cancels the remaining senders.
func (s *Service) Run(ctx context.Context, accounts []*Account, tweets int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, a := range accounts {
		a := a
		g.Go(func() error {
			s.logger.Info("start tweeting", "account", a.name)
			for i := 0; i < tweets; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.Tweet(a, fmt.Sprintf("@%s, tweet number %d", a.name, i)); err != nil {
					return fmt.Errorf("tweet %d from %s: %w", i, a, err)
				}
			}
			s.logger.Info("stop tweeting", "account", a.name)
			return nil
		})
	}
	return g.Wait()
}
