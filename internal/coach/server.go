package coach

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/store"
)

// Server speaks MCP-style JSON-RPC over a stream, one message per line. The
// agent framework on the other end drives the two coach tools through it.
type Server struct {
	app *store.App
	in  io.Reader
	out io.Writer
}

// NewServer creates a coach tool server over the given streams.
func NewServer(app *store.App, in io.Reader, out io.Writer) *Server {
	return &Server{app: app, in: in, out: out}
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type initializeResult struct {
	ProtocolVersion string     `json:"protocolVersion"`
	ServerInfo      serverInfo `json:"serverInfo"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type listToolsResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// ToolDefinition describes one callable tool to the agent framework.
type ToolDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

type callToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type callToolResult struct {
	Content []toolContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolDefinitions lists the coach's callable tools.
func ToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "addTaskToMatrix",
			Description: "Add a task to the Eisenhower matrix.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title":       map[string]interface{}{"type": "string"},
					"description": map[string]interface{}{"type": "string"},
					"quadrant":    map[string]interface{}{"type": "integer", "minimum": 1, "maximum": 4},
				},
				"required": []string{"title", "quadrant"},
			},
		},
		{
			Name:        "recordGratitude",
			Description: "Record gratitude notes for today, optionally naming a person and reason.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"entries": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					"person":  map[string]interface{}{"type": "string"},
					"reason":  map[string]interface{}{"type": "string"},
				},
				"required": []string{"entries"},
			},
		},
	}
}

// Run serves requests until the input stream closes.
func (s *Server) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.in)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.send(&response{JSONRPC: "2.0", Error: &rpcError{Code: -32700, Message: "Parse error"}})
			continue
		}

		if resp := s.handle(ctx, &req); resp != nil {
			if err := s.send(resp); err != nil {
				return err
			}
		}
	}
}

func (s *Server) handle(ctx context.Context, req *request) *response {
	switch req.Method {
	case "initialize":
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: initializeResult{
				ProtocolVersion: "2024-11-05",
				ServerInfo:      serverInfo{Name: constants.AppName + "-coach", Version: constants.Version},
			},
		}
	case "tools/list":
		return &response{JSONRPC: "2.0", ID: req.ID, Result: listToolsResult{Tools: ToolDefinitions()}}
	case "tools/call":
		return s.handleCall(ctx, req)
	case "notifications/initialized":
		return nil
	default:
		return &response{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32601, Message: "Method not found"}}
	}
}

func (s *Server) handleCall(ctx context.Context, req *request) *response {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &response{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32602, Message: "Invalid params"}}
	}

	confirmation, err := NewToolHandler(s.app).Handle(ctx, params.Name, params.Arguments)
	if err != nil {
		return &response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result: callToolResult{
				Content: []toolContent{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
				IsError: true,
			},
		}
	}

	return &response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  callToolResult{Content: []toolContent{{Type: "text", Text: confirmation}}},
	}
}

func (s *Server) send(resp *response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out, "%s\n", data)
	return err
}
