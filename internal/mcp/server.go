// Package mcp exposes the tool catalog over JSON-RPC 2.0, one request per
// line. The same loop serves stdio (the default transport for MCP clients)
// and TCP connections; tool semantics live entirely in the executor.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/tools"
)

// protocolVersion is the MCP revision this server speaks.
const protocolVersion = "2024-11-05"

// maxLineBytes caps a single request line. Catalog arguments are small;
// anything beyond this is a client bug.
const maxLineBytes = 1024 * 1024

type Server struct {
	exec    *tools.Executor
	version string
	addr    string
	logger  *slog.Logger

	ln     net.Listener
	mu     sync.Mutex
	closed bool
}

// NewServer wires the executor behind both transports. addr is only used
// by ListenAndServe; version is reported in the initialize handshake.
func NewServer(addr string, exec *tools.Executor, version string, logger *slog.Logger) *Server {
	if version == "" {
		version = "dev"
	}
	return &Server{exec: exec, version: version, addr: addr, logger: logger}
}

type jsonRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListenAndServe accepts TCP connections and runs one request loop per
// connection. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.logger.Info("mcp server starting", "addr", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			s.logger.Error("mcp accept error", "error", err)
			continue
		}
		go s.handleConn(conn)
	}
}

// Addr reports the bound listener address, or nil before ListenAndServe.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) Shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.ln != nil {
		return s.ln.Close()
	}
	return nil
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	connID := uuid.New().String()
	s.logger.Info("mcp client connected", "conn_id", connID, "remote", conn.RemoteAddr().String())
	if err := s.serve(conn, conn, connID); err != nil {
		s.logger.Warn("mcp connection error", "conn_id", connID, "error", err)
	}
	s.logger.Info("mcp client disconnected", "conn_id", connID)
}

// Serve runs the request loop over stdio until EOF.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	return s.serve(r, w, "stdio")
}

func (s *Server) serve(r io.Reader, w io.Writer, connID string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req jsonRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("mcp parse error", "conn_id", connID, "error", err)
			s.writeResponse(w, jsonRPCResponse{
				JSONRPC: "2.0",
				ID:      nil,
				Error:   &rpcError{Code: -32700, Message: "parse error"},
			})
			continue
		}

		// Requests without an id are notifications and get no response.
		if req.ID == nil {
			s.logger.Debug("mcp notification", "conn_id", connID, "method", req.Method)
			continue
		}

		resp := s.dispatch(context.Background(), req)
		s.logger.Debug("mcp request handled", "conn_id", connID, "method", req.Method)
		s.writeResponse(w, resp)
	}
	return scanner.Err()
}

func (s *Server) writeResponse(w io.Writer, resp jsonRPCResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("mcp marshal response failed", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("mcp write failed", "error", err)
	}
}

func (s *Server) dispatch(ctx context.Context, req jsonRPCRequest) jsonRPCResponse {
	base := jsonRPCResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		base.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{"listChanged": false}},
			"serverInfo":      map[string]any{"name": "bookhub", "version": s.version},
		}

	case "ping":
		base.Result = map[string]any{}

	case "tools/list":
		base.Result = map[string]any{"tools": s.toolDefinitions()}

	case "tools/call":
		return s.handleToolCall(ctx, req, base)

	default:
		base.Error = &rpcError{Code: -32601, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
	return base
}

func (s *Server) toolDefinitions() []map[string]any {
	catalog := s.exec.Registry().All()
	defs := make([]map[string]any, 0, len(catalog))
	for _, t := range catalog {
		defs = append(defs, t.Definition())
	}
	return defs
}

type toolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleToolCall(ctx context.Context, req jsonRPCRequest, base jsonRPCResponse) jsonRPCResponse {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		base.Error = &rpcError{Code: -32602, Message: "invalid params: " + err.Error()}
		return base
	}
	if params.Name == "" {
		base.Error = &rpcError{Code: -32602, Message: "tool name is required"}
		return base
	}

	env := s.exec.Execute(ctx, params.Name, params.Arguments)
	base.Result = callResult(env)
	return base
}

// callResult renders an envelope as MCP content. Tool failures stay inside
// the result with isError set; JSON-RPC errors are reserved for protocol
// problems.
func callResult(env core.ToolEnvelope) map[string]any {
	if env.Error != nil {
		return map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": env.Error.Code + ": " + env.Error.Message},
			},
			"isError": true,
		}
	}

	text := env.Text
	if env.Result != nil {
		if data, err := json.MarshalIndent(env.Result, "", "  "); err == nil {
			text += "\n" + string(data)
		}
	}
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"isError": false,
	}
}
