package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
)

// notify sends an info-level log message to the calling host. Calls made
// outside a client session have no one to notify.
func (s *Server) notify(ctx context.Context, msg string) {
	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return
	}

	err := srv.SendNotificationToClient(ctx, "notifications/message", map[string]any{
		"level":  "info",
		"logger": "outline",
		"data":   msg,
	})
	if err != nil {
		s.logger.Trace("progress notification not sent", "error", err)
	}
}
