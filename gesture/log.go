package gesture

import (
	"io"
	"log/slog"

	"github.com/phanxgames/zoombrush"
)

// discardLogger is the default for controllers with no logger set.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}

// domainAttr groups a DomainPair for structured logging.
func domainAttr(key string, d zoombrush.DomainPair) slog.Attr {
	return slog.Group(key,
		slog.Float64("x0", d.X.From), slog.Float64("x1", d.X.To),
		slog.Float64("y0", d.Y.From), slog.Float64("y1", d.Y.To),
	)
}

func pointAttr(key string, p zoombrush.Point) slog.Attr {
	return slog.Group(key, slog.Float64("x", p.X), slog.Float64("y", p.Y))
}

func boxAttr(key string, b zoombrush.Box) slog.Attr {
	return slog.Group(key,
		slog.Float64("x1", b.X1), slog.Float64("x2", b.X2),
		slog.Float64("y1", b.Y1), slog.Float64("y2", b.Y2),
	)
}
