// Package health probes the gateway's downstream dependencies and
// reports a composite status. It never fails: every probe error is
// folded into the status document.
package health

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 2 * time.Second

type Dependency struct {
	Name string
	URL  string
}

type DependencyStatus struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

type Status struct {
	Status       string                      `json:"status"`
	Timestamp    string                      `json:"timestamp"`
	Service      string                      `json:"service"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

type Checker struct {
	service string
	deps    []Dependency
	httpc   *http.Client
}

func NewChecker(service string, deps ...Dependency) *Checker {
	return &Checker{
		service: service,
		deps:    deps,
		httpc:   &http.Client{Timeout: probeTimeout},
	}
}

// Check probes every configured dependency concurrently. Overall
// status is "ok" only when every configured dependency is "ok"; an
// unconfigured dependency is reported but does not degrade the whole.
func (c *Checker) Check(ctx context.Context) Status {
	results := make([]DependencyStatus, len(c.deps))

	g, ctx := errgroup.WithContext(ctx)
	for i, dep := range c.deps {
		i, dep := i, dep
		g.Go(func() error {
			results[i] = c.probe(ctx, dep)
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	deps := make(map[string]DependencyStatus, len(c.deps))
	for i, dep := range c.deps {
		deps[dep.Name] = results[i]
		if results[i].Status == "error" {
			overall = "degraded"
		}
	}

	return Status{
		Status:       overall,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Service:      c.service,
		Dependencies: deps,
	}
}

func (c *Checker) probe(ctx context.Context, dep Dependency) DependencyStatus {
	if dep.URL == "" {
		return DependencyStatus{Status: "not configured", URL: "not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dep.URL+"/health", nil)
	if err != nil {
		return DependencyStatus{Status: "error", URL: dep.URL}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return DependencyStatus{Status: "error", URL: dep.URL}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return DependencyStatus{Status: "error", URL: dep.URL}
	}
	return DependencyStatus{Status: "ok", URL: dep.URL}
}
