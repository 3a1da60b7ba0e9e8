package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	expensehandler "github.com/carson-networks/expense-server/internal/handlers/expense"
	"github.com/carson-networks/expense-server/internal/handlers/status"
	taxonomyhandler "github.com/carson-networks/expense-server/internal/handlers/taxonomy"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/taxonomy"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Expense Tracker MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.0.0"
)

// TransportStdio selects the stdio MCP transport; anything else serves HTTP.
const TransportStdio = "stdio"

// Server exposes the expense service over MCP, plus a plain /status endpoint
// when the HTTP transport is used.
type Server struct {
	Logger    *logrus.Logger
	Port      string
	Transport string
	Service   *service.Service
	Taxonomy  *taxonomy.Provider
}

// build constructs the MCP server with every tool and resource registered.
func (s *Server) build() *mcp.Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	svc := s.Service.Expense
	mcp.AddTool(mcpServer, expensehandler.AddExpenseTool(),
		logTool(s.Logger, "AddExpense", expensehandler.AddExpenseHandler(svc)))
	mcp.AddTool(mcpServer, expensehandler.ListExpensesTool(),
		logTool(s.Logger, "ListExpenses", expensehandler.ListExpensesHandler(svc)))
	mcp.AddTool(mcpServer, expensehandler.UpdateExpenseTool(),
		logTool(s.Logger, "UpdateExpense", expensehandler.UpdateExpenseHandler(svc)))
	mcp.AddTool(mcpServer, expensehandler.DeleteExpenseTool(),
		logTool(s.Logger, "DeleteExpense", expensehandler.DeleteExpenseHandler(svc)))
	mcp.AddTool(mcpServer, expensehandler.SummaryTool(),
		logTool(s.Logger, "GetExpenseSummary", expensehandler.SummaryHandler(svc)))

	mcpServer.AddResource(taxonomyhandler.CategoriesResource(),
		taxonomyhandler.CategoriesResourceHandler(s.Taxonomy))
	mcpServer.AddResource(serverInfoResource(), serverInfoResourceHandler())

	return mcpServer
}

// Serve blocks serving MCP over the configured transport until ctx ends.
func (s *Server) Serve(ctx context.Context) error {
	mcpServer := s.build()

	if s.Transport == TransportStdio {
		s.Logger.Info("McpServer.Serve.stdio")
		err := mcpServer.Run(ctx, &mcp.StdioTransport{})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		return err
	}

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	statusHandler := status.NewHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", s.Logger, statusHandler.Handler))
	mux.Handle("/mcp", mcpHandler)

	server := http.Server{
		Addr:    ":" + s.Port,
		Handler: mux,
		// No WriteTimeout: streamable MCP responses can outlive a fixed
		// write deadline.
		ReadTimeout:       time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err != nil {
		s.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	s.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
