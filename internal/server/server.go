// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"go.uber.org/zap"

	"github.com/zxcfer/nutrack/internal/fdc"
	"github.com/zxcfer/nutrack/internal/logger"
	"github.com/zxcfer/nutrack/internal/storage"
)

type Config struct {
	Host   string
	Port   int
	DBPath string
	FDCKey string
}

// FoodServer exposes the serving-quantity parser and the FoodData Central
// importer as MCP tools over HTTP.
type FoodServer struct {
	server     *server.Server
	httpServer *http.Server
	storage    *storage.SQLiteStorage
	fdcClient  *fdc.Client
	config     *Config
}

func NewFoodServer(cfg *Config) (*FoodServer, error) {
	stor, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	foodServer := &FoodServer{
		storage:   stor,
		fdcClient: fdc.NewClient(cfg.FDCKey),
		config:    cfg,
	}

	mux := http.NewServeMux()

	// MCP server metadata; transport is handled by the HTTP mux below
	mcpServer, err := server.NewServer(
		nil,
		server.WithServerInfo(protocol.Implementation{
			Name:    "nutrack",
			Version: "1.0.0",
		}),
	)
	if err != nil {
		stor.Close()
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}
	foodServer.server = mcpServer

	mux.HandleFunc("/", foodServer.handleHTTP)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	foodServer.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return foodServer, nil
}

func (s *FoodServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	var result *protocol.CallToolResult
	var err error

	switch request.Name {
	case "parse_serving":
		result, err = s.handleParseServing(&request)
	case "search_foods":
		result, err = s.handleSearchFoods(r.Context(), &request)
	case "import_foods":
		result, err = s.handleImportFoods(r.Context(), &request)
	case "get_food":
		result, err = s.handleGetFood(&request)
	case "list_foods":
		result, err = s.handleListFoods(&request)
	default:
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	if err != nil {
		logger.Error("tool call failed", zap.String("tool", request.Name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *FoodServer) Start(ctx context.Context) error {
	logger.Info("starting nutrack server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *FoodServer) Stop() error {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

func (s *FoodServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
