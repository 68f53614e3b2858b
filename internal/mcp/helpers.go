package mcp

import (
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult renders data as indented JSON followed by any non-empty extra blocks.
func textResult(data any, extra ...string) (*mcpsdk.CallToolResult, any, error) {
	out, err := formatResult(data)
	if err != nil {
		return nil, nil, err
	}
	content := []mcpsdk.Content{&mcpsdk.TextContent{Text: out}}
	for _, e := range extra {
		if e != "" {
			content = append(content, &mcpsdk.TextContent{Text: e})
		}
	}
	return &mcpsdk.CallToolResult{Content: content}, nil, nil
}

func formatResult(data any) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(out), nil
}
