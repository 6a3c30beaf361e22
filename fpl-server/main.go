package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"fpl-recommend/internal/config"
	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/logging"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("fpl-server", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	var (
		addr        = fs.String("addr", ":8080", "HTTP listen address")
		mcpPath     = fs.String("path", "/mcp", "HTTP path for MCP endpoint")
		requireAuth = fs.Bool("require-auth", true, "require API key auth via FPL_MCP_API_KEY")
		authHeader  = fs.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	fs.Parse(os.Args[1:])

	log := logging.WithRun(logging.New(cfg.LogLevel, os.Stderr), "mcp")
	client := cfg.NewClient(log)

	server, registry := newServer(client, log)

	apiKey := strings.TrimSpace(os.Getenv("FPL_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("FPL_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	mux := newMux(server, registry, *mcpPath, apiKey, *authHeader)

	log.WithFields(logrus.Fields{"addr": *addr, "path": *mcpPath}).Info("MCP HTTP server listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newServer(f fetch.Fetcher, log *logrus.Entry) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-recommend-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 2)

	addTool(server, &registry, &mcp.Tool{
		Name:        "recommend_players",
		Description: "Top players by (2*form + points per game) / upcoming fixture difficulty",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RecommendPlayersArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(buildRecommendPlayers(ctx, f, args, log))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_fixture_difficulty",
		Description: "Summed difficulty of a team's next fixtures in API order",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamFixtureDifficultyArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(buildTeamFixtureDifficulty(ctx, f, args))
	})

	return server, registry
}

func newMux(server *mcp.Server, registry []toolInfo, mcpPath string, apiKey string, authHeader string) *http.ServeMux {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	mux.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))
	mux.HandleFunc(mcpPath, withAuth(handler.ServeHTTP))
	return mux
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
