package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"maven-depman/internal/ports"
	"maven-depman/internal/shared"
	"maven-depman/internal/types"
)

const defaultRepoHTTPTimeout = 30 * time.Second
const defaultRepoHTTPRetries = 3
const defaultRepoHTTPRetryDelay = 200 * time.Millisecond
const maxRepoHTTPRetryDelay = 2 * time.Second

// RepoHTTPAdapter serves POMs from a remote repository in standard Maven
// layout behind a base URL, e.g. https://repo1.maven.org/maven2.
type RepoHTTPAdapter struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	mu    sync.Mutex
	cache map[string]types.PomDocument
}

func NewRepoHTTPAdapter(baseURL string, timeoutSec int, retries int, retryDelayMs int) *RepoHTTPAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultRepoHTTPTimeout
	}
	if retries <= 0 {
		retries = defaultRepoHTTPRetries
	}
	retryDelay := time.Duration(retryDelayMs) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = defaultRepoHTTPRetryDelay
	}
	return &RepoHTTPAdapter{
		BaseURL:    baseURL,
		Timeout:    timeout,
		Retries:    retries,
		RetryDelay: retryDelay,
		cache:      map[string]types.PomDocument{},
	}
}

func (a *RepoHTTPAdapter) FetchPom(ctx context.Context, coordinates types.Coordinates) (types.PomDocument, error) {
	url := a.pomURL(coordinates)

	a.mu.Lock()
	if doc, ok := a.cache[url]; ok {
		a.mu.Unlock()
		return doc, nil
	}
	a.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < a.Retries; attempt++ {
		if ctx.Err() != nil {
			return types.PomDocument{}, ctx.Err()
		}
		data, retry, err := a.fetchOnce(ctx, url)
		if err == nil {
			doc, err := ParsePomDocument(data)
			if err != nil {
				return types.PomDocument{}, err
			}
			log.Ctx(ctx).Debug().Str("url", url).Msg("fetched pom from http repository")
			a.mu.Lock()
			a.cache[url] = doc
			a.mu.Unlock()
			return doc, nil
		}
		lastErr = err
		if !retry || attempt == a.Retries-1 {
			return types.PomDocument{}, err
		}
		time.Sleep(a.retryDelay(attempt))
	}
	if lastErr == nil {
		lastErr = errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pom fetch failed")
	}
	return types.PomDocument{}, lastErr
}

func (a *RepoHTTPAdapter) fetchOnce(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create repository request").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("repository request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bom not found in repository").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return nil, retry, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("repository returned an error").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read repository response").
			WithCause(err)
	}
	return data, false, nil
}

func (a *RepoHTTPAdapter) pomURL(coordinates types.Coordinates) string {
	base := strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		base,
		shared.GroupPath(coordinates.GroupID),
		coordinates.ArtifactID,
		coordinates.Version,
		shared.PomFileName(coordinates.ArtifactID, coordinates.Version),
	)
}

func (a *RepoHTTPAdapter) retryDelay(attempt int) time.Duration {
	delay := a.RetryDelay * time.Duration(1<<attempt)
	if delay > maxRepoHTTPRetryDelay {
		delay = maxRepoHTTPRetryDelay
	}
	return delay
}

var _ ports.PomRepositoryPort = (*RepoHTTPAdapter)(nil)
