package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/askwall/askwall/internal/cache"
	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
	"github.com/gorilla/feeds"
)

const rssCacheKey = "rss"

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	FeedLimit       int
	Lister          datasources.LatestQuestionLister
	Cache           *cache.Cache[string]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rss, ok := c.Cache.Get(rssCacheKey)
	if !ok {
		var err error
		rss, err = c.renderFeed(r)
		if err != nil {
			ctx := r.Context()
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "unable to build feed", "error", err)

			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		c.Cache.Set(rssCacheKey, rss)
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func (c RSS) renderFeed(r *http.Request) (string, error) {
	questions, err := c.Lister.ListLatestQuestions(r.Context(), c.FeedLimit)
	if err != nil {
		return "", fmt.Errorf("fetching questions for feed: %w", err)
	}

	feed := &feeds.Feed{
		Title:       "Latest Questions",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new questions posted to the wall",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, q := range questions {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          q.ID,
			IsPermaLink: "false",
			Title:       q.Description,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/v1/questions/%s", c.FeedHostname, q.ID)},
			Description: fmt.Sprintf("%d likes, %d dislikes", q.Likes, q.Dislikes),
			Created:     q.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("formatting feed as RSS: %w", err)
	}

	return rss, nil
}
