package main

import (
	"strings"
	"testing"
)

func TestFormatResponse_LabelAndIndentedJSON(t *testing.T) {
	body := []byte(`{"id":"g1","name":"Run a 5K"}`)
	got := formatResponse("Goal created", body)

	if !strings.HasPrefix(got, "Goal created:\n\n") {
		t.Errorf("Expected label prefix followed by blank line, got %q", got)
	}
	if !strings.Contains(got, "  \"id\": \"g1\"") {
		t.Errorf("Expected two-space indented JSON, got %q", got)
	}
	if !strings.Contains(got, "  \"name\": \"Run a 5K\"") {
		t.Errorf("Expected indented name field, got %q", got)
	}
}

func TestFormatResponse_NonJSONPassesThrough(t *testing.T) {
	got := formatResponse("Backend says", []byte("plain text reply"))
	if got != "Backend says:\n\nplain text reply" {
		t.Errorf("Non-JSON body should pass through verbatim, got %q", got)
	}
}

func TestFormatResponse_EmptyBody(t *testing.T) {
	if got := formatResponse("Goal deleted", nil); got != "Goal deleted: OK" {
		t.Errorf("Expected 'Goal deleted: OK', got %q", got)
	}
	if got := formatResponse("Goal deleted", []byte("  \n ")); got != "Goal deleted: OK" {
		t.Errorf("Whitespace-only body counts as empty, got %q", got)
	}
	if got := formatResponse("", nil); got != "OK" {
		t.Errorf("Expected bare 'OK' with no label, got %q", got)
	}
}

func TestFormatResponse_NoLabel(t *testing.T) {
	got := formatResponse("", []byte(`{"ok":true}`))
	if strings.HasPrefix(got, ":") {
		t.Errorf("Label-less response must not start with a colon, got %q", got)
	}
	if !strings.Contains(got, "\"ok\": true") {
		t.Errorf("Expected indented JSON, got %q", got)
	}
}

func TestTextAndErrorResults(t *testing.T) {
	ok := textResult("all good")
	if ok.IsError {
		t.Error("textResult must not set IsError")
	}
	if got := resultText(t, ok); got != "all good" {
		t.Errorf("Expected 'all good', got %q", got)
	}

	bad := errorResult("something broke")
	if !bad.IsError {
		t.Error("errorResult must set IsError")
	}
	if got := resultText(t, bad); got != "something broke" {
		t.Errorf("Expected 'something broke', got %q", got)
	}
}

func TestPrettyJSON_ArrayAndInvalid(t *testing.T) {
	got := prettyJSON([]byte(`[{"a":1},{"a":2}]`))
	if !strings.Contains(got, "  {\n") {
		t.Errorf("Expected indented array elements, got %q", got)
	}

	raw := `{"broken":`
	if got := prettyJSON([]byte(raw)); got != raw {
		t.Errorf("Invalid JSON must be returned unchanged, got %q", got)
	}
}
