package main

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// formatResponse wraps a backend reply as readable text prefixed by the
// tool's human label (e.g. "Goal created"). The body is re-indented when it
// is valid JSON and passed through verbatim otherwise.
func formatResponse(label string, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		if label == "" {
			return "OK"
		}
		return label + ": OK"
	}
	text := prettyJSON(trimmed)
	if label == "" {
		return text
	}
	return label + ":\n\n" + text
}

// prettyJSON indents a JSON document for transcript display. Non-JSON
// bodies are returned unchanged.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
