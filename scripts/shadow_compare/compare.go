package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// target is one request replayed against both services. GoPath defaults to
// LegacyPath so legacy aliases can be compared directly.
type target struct {
	Method     string          `json:"method"`
	LegacyPath string          `json:"legacyPath"`
	GoPath     string          `json:"goPath"`
	Body       json.RawMessage `json:"body"`
	Ignore     []string        `json:"ignore"`
	Critical   bool            `json:"critical"`
}

type targetsFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) diff() bool {
	return c.Error != nil || !c.StatusMatch || !c.BodyMatch
}

type comparer struct {
	goClient     *resty.Client
	legacyClient *resty.Client
}

func newComparer(goBase, legacyBase string, timeout time.Duration) *comparer {
	return &comparer{
		goClient:     newClient(goBase, timeout),
		legacyClient: newClient(legacyBase, timeout),
	}
}

func newClient(base string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseTargets(bytes.NewReader(data), path)
}

func parseTargets(r io.Reader, source string) ([]target, error) {
	var file targetsFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", source)
	}
	for i := range file.Targets {
		t := &file.Targets[i]
		t.Method = strings.ToUpper(strings.TrimSpace(t.Method))
		if t.Method == "" {
			t.Method = http.MethodGet
		}
		t.LegacyPath = withSlash(t.LegacyPath)
		if t.GoPath == "" {
			t.GoPath = t.LegacyPath
		}
		t.GoPath = withSlash(t.GoPath)
	}
	return file.Targets, nil
}

func (c *comparer) compare(tgt target) comparison {
	comp := comparison{Target: tgt}

	goResp, goErr := c.send(c.goClient, tgt.Method, tgt.GoPath, tgt.Body)
	legacyResp, legacyErr := c.send(c.legacyClient, tgt.Method, tgt.LegacyPath, tgt.Body)
	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.DurationGo = goResp.Time()
	comp.DurationLegacy = legacyResp.Time()
	comp.GoStatus = goResp.StatusCode()
	comp.LegacyStatus = legacyResp.StatusCode()
	comp.StatusMatch = comp.GoStatus == comp.LegacyStatus
	comp.BodyMatch = bodiesEqual(goResp.Body(), legacyResp.Body(), tgt.Ignore)
	return comp
}

func (c *comparer) send(client *resty.Client, method, path string, body json.RawMessage) (*resty.Response, error) {
	req := client.R()
	if len(body) > 0 {
		req.SetHeader("Content-Type", "application/json").SetBody([]byte(body))
	}
	return req.Execute(method, path)
}

// bodiesEqual compares JSON documents after dropping ignored keys at any depth.
// Non-JSON bodies must match byte for byte.
func bodiesEqual(a, b []byte, ignore []string) bool {
	if len(ignore) == 0 && bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b))
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, key := range ignore {
		skip[key] = struct{}{}
	}
	return reflect.DeepEqual(normalize(aj, skip), normalize(bj, skip))
}

func normalize(v interface{}, skip map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if _, ignored := skip[k]; ignored {
				continue
			}
			out[k] = normalize(child, skip)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = normalize(child, skip)
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func tally(results []comparison) (breaking, optional int) {
	for _, res := range results {
		if !res.diff() {
			continue
		}
		if res.Target.Critical {
			breaking++
		} else {
			optional++
		}
	}
	return breaking, optional
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if res.diff() {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s -> %s\n", status, res.Target.Method, res.Target.LegacyPath, res.Target.GoPath)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}

func withSlash(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
