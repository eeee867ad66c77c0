package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jongio/duckurl/duckapi"
	"github.com/jongio/duckurl/httpclient"
	"github.com/jongio/duckurl/logutil"
	"github.com/jongio/duckurl/metrics"
	"github.com/jongio/duckurl/urlutil"
)

// Tool and argument names.
const (
	ToolRandomDuckURL = "random_duck_url"
	ArgEndpoint       = "endpoint"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "duckurl"

// Server handles tool calls with a shared HTTP client.
type Server struct {
	client   httpclient.Doer
	endpoint string
	recorder *metrics.Recorder
}

// New creates a Server. recorder may be nil.
func New(client httpclient.Doer, endpoint string, recorder *metrics.Recorder) *Server {
	if recorder != nil {
		client = recorder.InstrumentDoer(client)
	}
	return &Server{client: client, endpoint: endpoint, recorder: recorder}
}

// Tool describes random_duck_url.
func Tool() mcp.Tool {
	return mcp.NewTool(ToolRandomDuckURL,
		mcp.WithDescription("Fetch one random duck image URL from the random-d.uk API"),
		mcp.WithString(ArgEndpoint,
			mcp.Description("API endpoint returning a JSON object with a \"url\" key; defaults to the configured endpoint"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// MCPServer builds the protocol server with the tool registered.
func (s *Server) MCPServer(version string) *server.MCPServer {
	srv := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))
	srv.AddTool(Tool(), s.HandleRandomDuckURL)
	return srv
}

// Serve speaks MCP over in/out until ctx is done or in is closed.
func (s *Server) Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.MCPServer(version))
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

// HandleRandomDuckURL runs the pipeline once. Pipeline failures are returned
// as tool error results, not protocol errors.
func (s *Server) HandleRandomDuckURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := logutil.NewLogger("mcpserver").WithOperation(ToolRandomDuckURL)

	endpoint := s.endpoint
	if override, ok := getStringParam(getArgsMap(request), ArgEndpoint); ok && override != "" {
		if err := urlutil.Validate(override); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid %s argument: %v", ArgEndpoint, err)), nil
		}
		endpoint = override
	}

	u, err := duckapi.RandomDuckURL(ctx, s.client, endpoint)
	if s.recorder != nil {
		s.recorder.RecordOutcome(err)
	}
	if err != nil {
		log.Warn("tool call failed", "endpoint", endpoint, "error", err)
		return errorResult(err), nil
	}

	return marshalToolResult(map[string]string{"url": u.String()})
}

type toolError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func errorResult(err error) *mcp.CallToolResult {
	kind := string(duckapi.KindOf(err))
	if kind == "" {
		kind = "error"
	}
	data, mErr := json.Marshal(toolError{Error: err.Error(), Kind: kind})
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}

// getArgsMap returns the call's arguments, or an empty map when they are
// missing or not an object.
func getArgsMap(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

func getStringParam(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func marshalToolResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
