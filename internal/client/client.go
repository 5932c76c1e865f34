// Package client is the cached, retrying fetch layer over the FitStar API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/ristretto"
	errorvalues "github.com/limbo/fitstar/internal/error_values"
	"github.com/limbo/fitstar/pkg/entity"
	"github.com/limbo/fitstar/pkg/httputil"
)

const (
	defaultTTL     = 5 * time.Minute
	defaultRetries = 3
	defaultMaxCost = 1 << 24
)

// Groups dropped from the cache after a workout is logged. The trailing
// slash keeps "/api/workout-plan" cached.
var workoutLoggedGroups = []string{"/api/progress/", "/api/user/", "/api/workout/"}

// StatusError is a non-2xx API answer.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return "api responded " + strconv.Itoa(e.Code) + ": " + e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *ristretto.Cache
	ttl        time.Duration
	retries    uint64
	newBackOff func() backoff.BackOff

	maxCost int64

	// setMu orders cache writes against invalidations.
	setMu sync.Mutex
	gen   uint64
	// Live cache keys, pruned by the cache's exit callback.
	keys sync.Map
}

// cacheEntry is what the cache stores, so exit callbacks know the key.
type cacheEntry struct {
	key  string
	body []byte
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithBackOff replaces the exponential policy between GET attempts.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

func WithRetries(n uint64) Option {
	return func(c *Client) {
		c.retries = n
	}
}

// WithMaxCost bounds the cached bytes.
func WithMaxCost(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxCost = n
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		ttl:        defaultTTL,
		retries:    defaultRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		maxCost:    defaultMaxCost,
	}
	for _, opt := range opts {
		opt(c)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     c.maxCost,
		BufferItems: 64,
		// Runs for deletes, TTL expiry, evictions and rejected sets.
		OnExit: c.forget,
	})
	if err != nil {
		return nil, errors.New("creating response cache error: " + err.Error())
	}
	c.cache = cache
	return c, nil
}

// forget drops the key of an entry that left the cache. A newer entry under
// the same key is kept. It must not take setMu: the cache calls it
// synchronously from Del and SetWithTTL.
func (c *Client) forget(val any) {
	if e, ok := val.(*cacheEntry); ok {
		c.keys.CompareAndDelete(e.key, e)
	}
}

func (c *Client) Close() {
	c.cache.Close()
}

func cacheKey(path string, refresh int) string {
	return path + "#" + strconv.Itoa(refresh)
}

// Query GETs path into dst. A cached answer for the same path and refresh key
// is reused until its TTL expires or its group is invalidated.
func (c *Client) Query(ctx context.Context, path string, refresh int, dst any) error {
	key := cacheKey(path, refresh)
	if v, ok := c.cache.Get(key); ok {
		return sonic.Unmarshal(v.(*cacheEntry).body, dst)
	}
	c.setMu.Lock()
	gen := c.gen
	c.setMu.Unlock()
	raw, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}
	c.store(key, raw, gen)
	return sonic.Unmarshal(raw, dst)
}

// store caches raw unless an invalidation ran since the fetch started:
// such an answer may predate the mutation behind the invalidation.
func (c *Client) store(key string, raw []byte, gen uint64) {
	c.setMu.Lock()
	if c.gen != gen {
		c.setMu.Unlock()
		return
	}
	entry := &cacheEntry{key: key, body: raw}
	c.keys.Store(key, entry)
	if !c.cache.SetWithTTL(key, entry, int64(len(raw)), c.ttl) {
		c.keys.CompareAndDelete(key, entry)
	}
	c.setMu.Unlock()
	c.cache.Wait()
}

// Invalidate drops every cached answer whose path starts with prefix, and
// keeps answers of requests already in flight out of the cache.
func (c *Client) Invalidate(prefix string) {
	c.setMu.Lock()
	defer c.setMu.Unlock()
	c.gen++
	c.keys.Range(func(k, _ any) bool {
		if key := k.(string); strings.HasPrefix(key, prefix) {
			c.keys.Delete(key)
			c.cache.Del(key)
		}
		return true
	})
}

// Len reports how many answers are cached.
func (c *Client) Len() int {
	n := 0
	c.keys.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	var body []byte
	attempt := 0
	operation := func() error {
		attempt++
		raw, err := c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			var se *StatusError
			if errors.As(err, &se) && se.Code < http.StatusInternalServerError {
				return backoff.Permanent(err)
			}
			slog.Debug("api request failed", slog.String("path", path), slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return err
		}
		body = raw
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.retries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, mapStatus(err)
	}
	return body, nil
}

func mapStatus(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %w", errorvalues.ErrNotFound, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr httputil.ErrorResponse
		msg := http.StatusText(resp.StatusCode)
		if sonic.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: msg}
	}
	return raw, nil
}

func userPath(group string, userID int64) string {
	return group + "/user/" + strconv.FormatInt(userID, 10)
}

func (c *Client) User(ctx context.Context, userID int64, refresh int) (*entity.User, error) {
	var user entity.User
	if err := c.Query(ctx, userPath("/api", userID), refresh, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Analyses(ctx context.Context, userID int64, refresh int) ([]*entity.BodyAnalysis, error) {
	analyses := make([]*entity.BodyAnalysis, 0)
	if err := c.Query(ctx, userPath("/api/body-analysis", userID), refresh, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (c *Client) LatestAnalysis(ctx context.Context, userID int64, refresh int) (*entity.BodyAnalysis, error) {
	var analysis entity.BodyAnalysis
	if err := c.Query(ctx, userPath("/api/body-analysis", userID)+"/latest", refresh, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Comparison decodes the server-side match card into dst so callers pick the shape.
func (c *Client) Comparison(ctx context.Context, userID int64, refresh int, dst any) error {
	return c.Query(ctx, userPath("/api/body-analysis", userID)+"/latest/comparison", refresh, dst)
}

func (c *Client) Progress(ctx context.Context, userID int64, refresh int) (*entity.ProgressData, error) {
	var progress entity.ProgressData
	if err := c.Query(ctx, userPath("/api/progress", userID), refresh, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *Client) Plan(ctx context.Context, bodyType string, refresh int) ([]entity.WeeklyWorkout, error) {
	var plan []entity.WeeklyWorkout
	path := "/api/workout-plan?bodyType=" + url.QueryEscape(bodyType)
	if err := c.Query(ctx, path, refresh, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) Today(ctx context.Context, userID int64, refresh int) ([]entity.TodayWorkout, error) {
	var workouts []entity.TodayWorkout
	if err := c.Query(ctx, userPath("/api/workout", userID)+"/today", refresh, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

type LogWorkoutRequest struct {
	UserID         int64  `json:"userId"`
	WorkoutPlanID  int64  `json:"workoutPlanId"`
	WorkoutName    string `json:"workoutName"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// LogWorkout is sent once. Progress, user and today's workouts are refetched
// on next read only if the server accepted the session.
func (c *Client) LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*entity.WorkoutSession, error) {
	payload, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodPost, "/api/workout-session", payload)
	if err != nil {
		return nil, mapStatus(err)
	}
	var session entity.WorkoutSession
	if err = sonic.Unmarshal(raw, &session); err != nil {
		return nil, errors.New("decoding workout session error: " + err.Error())
	}
	for _, group := range workoutLoggedGroups {
		c.Invalidate(group)
	}
	return &session, nil
}
