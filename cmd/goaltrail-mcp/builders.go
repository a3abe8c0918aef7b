package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// backendRequest is one fully composed HTTP call against the goal-tracking
// backend. Constructed fresh per tool call, never reused.
type backendRequest struct {
	method string
	path   string // includes interpolated entity IDs
	query  url.Values
	body   any // nil = no body; an empty map still sends {}
}

// buildFunc composes a backendRequest from a tool's argument bag. A non-nil
// request means "execute this"; an empty request with a non-empty skip
// message means the call is a no-op (e.g. zero steps supplied) and the
// message is returned directly.
type buildFunc func(args map[string]any) (req *backendRequest, skip string, err error)

// --- Argument extraction helpers ---

// optString returns a string argument when it is present and non-empty.
// Absent optional fields are omitted entirely from outgoing requests — the
// backend distinguishes "not provided" from "explicitly cleared", and only
// the former is reachable through this gateway.
func optString(args map[string]any, key string) (string, bool) {
	if v, ok := args[key].(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// optNumber returns a numeric argument when the supplied value is a number
// of any JSON-decodable flavor. Presence is "is it the number type", not
// truthiness: 0 is a meaningful status/visibility value and must survive.
func optNumber(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

// reqString returns a required string argument or an error naming it.
func reqString(args map[string]any, key string) (string, error) {
	v, ok := optString(args, key)
	if !ok {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

// stringSlice returns a string-array argument, tolerating both []string and
// the []any the JSON decoder produces. Non-string elements are skipped.
func stringSlice(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// setPageLimit copies the optional page/limit arguments into a query when
// the caller supplied numbers.
func setPageLimit(args map[string]any, q url.Values) {
	if page, ok := optNumber(args, "page"); ok {
		q.Set("page", strconv.Itoa(page))
	}
	if limit, ok := optNumber(args, "limit"); ok {
		q.Set("limit", strconv.Itoa(limit))
	}
}

// --- Builders (pure; one per tool, declaration order matches the catalog) ---

func buildAbout(_ map[string]any) (*backendRequest, string, error) {
	return &backendRequest{method: "GET", path: "/about"}, "", nil
}

func buildReadSelfUser(_ map[string]any) (*backendRequest, string, error) {
	return &backendRequest{method: "GET", path: "/users"}, "", nil
}

func buildUpdateSelfUser(args map[string]any) (*backendRequest, string, error) {
	body := map[string]any{}
	if name, ok := optString(args, "name"); ok {
		body["name"] = name
	}
	if about, ok := optString(args, "about"); ok {
		body["about"] = about
	}
	if visibility, ok := optNumber(args, "visibility"); ok {
		body["visibility"] = visibility
	}
	// An empty update is still a valid PATCH with body {} — not omitted.
	return &backendRequest{method: "PATCH", path: "/users", body: body}, "", nil
}

func buildCreateGoal(args map[string]any) (*backendRequest, string, error) {
	name, err := reqString(args, "name")
	if err != nil {
		return nil, "", err
	}
	body := map[string]any{"name": name}
	for _, key := range []string{"description", "story", "notes", "outcome"} {
		if v, ok := optString(args, key); ok {
			body[key] = v
		}
	}
	return &backendRequest{method: "POST", path: "/goals", body: body}, "", nil
}

func buildUpdateGoal(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	body := map[string]any{}
	for _, key := range []string{"name", "description", "story", "notes", "outcome"} {
		if v, ok := optString(args, key); ok {
			body[key] = v
		}
	}
	if status, ok := optNumber(args, "status"); ok {
		body["status"] = status
	}
	return &backendRequest{method: "PATCH", path: "/goals/" + url.PathEscape(id), body: body}, "", nil
}

func buildDestroyGoal(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "DELETE", path: "/goals/" + url.PathEscape(id)}, "", nil
}

func buildReadOneGoal(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "GET", path: "/goals/" + url.PathEscape(id)}, "", nil
}

func buildReadGoals(args map[string]any) (*backendRequest, string, error) {
	q := url.Values{}
	setPageLimit(args, q)
	// ID filters are repeated key/value pairs, never comma-joined.
	for _, id := range stringSlice(args, "ids") {
		q.Add("ids", id)
	}
	return &backendRequest{method: "GET", path: "/goals", query: q}, "", nil
}

func buildReadCurrentFocus(_ map[string]any) (*backendRequest, string, error) {
	return &backendRequest{method: "GET", path: "/current"}, "", nil
}

func buildGetStoryContext(args map[string]any) (*backendRequest, string, error) {
	q := url.Values{}
	if goalID, ok := optString(args, "goal_id"); ok {
		q.Set("goal_id", goalID)
	}
	if stepID, ok := optString(args, "step_id"); ok {
		q.Set("step_id", stepID)
	}
	return &backendRequest{method: "GET", path: "/context", query: q}, "", nil
}

func buildCreateSteps(args map[string]any) (*backendRequest, string, error) {
	goalID, err := reqString(args, "goal_id")
	if err != nil {
		return nil, "", err
	}
	names := stringSlice(args, "steps")
	if len(names) == 0 {
		return nil, "No steps provided; nothing was created.", nil
	}
	body := map[string]any{
		"goal_id": goalID,
		"steps":   orderedSteps(names, time.Now()),
	}
	return &backendRequest{method: "POST", path: "/steps", body: body}, "", nil
}

func buildReadSteps(args map[string]any) (*backendRequest, string, error) {
	goalID, err := reqString(args, "goal_id")
	if err != nil {
		return nil, "", err
	}
	q := url.Values{}
	q.Set("goal_id", goalID)
	setPageLimit(args, q)
	return &backendRequest{method: "GET", path: "/steps", query: q}, "", nil
}

func buildReadOneStep(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "GET", path: "/steps/" + url.PathEscape(id)}, "", nil
}

func buildUpdateStep(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	body := map[string]any{}
	for _, key := range []string{"name", "notes", "evidence"} {
		if v, ok := optString(args, key); ok {
			body[key] = v
		}
	}
	if status, ok := optNumber(args, "status"); ok {
		body["status"] = status
	}
	return &backendRequest{method: "PATCH", path: "/steps/" + url.PathEscape(id), body: body}, "", nil
}

func buildDestroyStep(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "DELETE", path: "/steps/" + url.PathEscape(id)}, "", nil
}

func buildSetStepsOrder(args map[string]any) (*backendRequest, string, error) {
	ids := stringSlice(args, "step_ids")
	if len(ids) == 0 {
		return nil, "No step IDs provided; nothing was reordered.", nil
	}
	body := map[string]any{"steps": orderedIDs(ids, time.Now())}
	return &backendRequest{method: "POST", path: "/steps/order", body: body}, "", nil
}

func buildCreateStory(args map[string]any) (*backendRequest, string, error) {
	body := map[string]any{}
	for _, key := range []string{"goal_id", "step_id", "title", "story_text"} {
		v, err := reqString(args, key)
		if err != nil {
			return nil, "", err
		}
		body[key] = v
	}
	return &backendRequest{method: "POST", path: "/stories", body: body}, "", nil
}

func buildReadStories(args map[string]any) (*backendRequest, string, error) {
	stepID, err := reqString(args, "step_id")
	if err != nil {
		return nil, "", err
	}
	q := url.Values{}
	q.Set("step_id", stepID)
	setPageLimit(args, q)
	return &backendRequest{method: "GET", path: "/stories", query: q}, "", nil
}

func buildReadOneStory(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "GET", path: "/stories/" + url.PathEscape(id)}, "", nil
}

func buildCreateScheduledStory(args map[string]any) (*backendRequest, string, error) {
	hour, err := reqString(args, "hour")
	if err != nil {
		return nil, "", err
	}
	period, err := reqString(args, "period")
	if err != nil {
		return nil, "", err
	}
	offset, err := reqString(args, "utc_offset")
	if err != nil {
		return nil, "", err
	}
	utcHour, utcMinute, err := normalizeTimeSettings(hour, period, offset)
	if err != nil {
		return nil, "", err
	}
	body := map[string]any{
		"utc_hour":   utcHour,
		"utc_minute": utcMinute,
	}
	if goalID, ok := optString(args, "goal_id"); ok {
		body["goal_id"] = goalID
	}
	return &backendRequest{method: "POST", path: "/schedules/stories", body: body}, "", nil
}

func buildReadScheduledStories(args map[string]any) (*backendRequest, string, error) {
	q := url.Values{}
	setPageLimit(args, q)
	return &backendRequest{method: "GET", path: "/schedules/stories", query: q}, "", nil
}

func buildUpdateScheduledStory(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	body := map[string]any{}

	hour, hasHour := optString(args, "hour")
	period, hasPeriod := optString(args, "period")
	offset, hasOffset := optString(args, "utc_offset")
	if hasHour || hasPeriod || hasOffset {
		if !hasHour || !hasPeriod || !hasOffset {
			return nil, "", fmt.Errorf("hour, period, and utc_offset must be provided together")
		}
		utcHour, utcMinute, err := normalizeTimeSettings(hour, period, offset)
		if err != nil {
			return nil, "", err
		}
		body["utc_hour"] = utcHour
		body["utc_minute"] = utcMinute
	}

	if status, ok := optNumber(args, "status"); ok {
		body["status"] = status
	}
	return &backendRequest{method: "PATCH", path: "/schedules/stories/" + url.PathEscape(id), body: body}, "", nil
}

func buildDestroyScheduledStory(args map[string]any) (*backendRequest, string, error) {
	id, err := reqString(args, "id")
	if err != nil {
		return nil, "", err
	}
	return &backendRequest{method: "DELETE", path: "/schedules/stories/" + url.PathEscape(id)}, "", nil
}
