package api

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/logging"
)

// logTool wraps a tool handler with start/complete logging and duration
// timing, the MCP counterpart of logging.LoggingWrapper for HTTP handlers.
// The LogData rides the context so handlers can attach fields of their own.
func logTool[I, O any](log *logrus.Logger, name string, handler mcp.ToolHandlerFor[I, O]) mcp.ToolHandlerFor[I, O] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		logData := logging.NewLogData(log)
		ctx = logging.WithLogData(ctx, logData)
		log.Infof("Tool.%v.Start", name)

		endTimer := logData.AddTiming("duration")
		result, output, err := handler(ctx, req, input)
		endTimer()

		if err != nil {
			logData.Log().WithError(err).Errorf("Tool.%v.Error", name)
			return result, output, err
		}

		logData.Log().Infof("Tool.%v.Complete", name)
		return result, output, nil
	}
}
