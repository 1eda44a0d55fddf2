package server

import (
	nethttp "net/http"
	"time"

	"shortly/internal/conf"
	"shortly/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, svc *service.ShortenerService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Http.Network != "" {
		opts = append(opts, http.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	opts = append(opts, http.Timeout(c.Http.TimeoutOrDefault(time.Second)))

	srv := http.NewServer(opts...)
	registerRoutes(srv, svc)
	return srv
}

// registerRoutes wires the request surface. The bare redirect route is
// registered last so fixed paths keep precedence.
func registerRoutes(srv *http.Server, svc *service.ShortenerService) {
	r := srv.Route("/")

	r.POST("/shorten", func(ctx http.Context) error {
		var req service.ShortenRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := svc.Shorten(ctx, &req)
		if err != nil {
			return err
		}
		return ctx.Result(nethttp.StatusCreated, reply)
	})

	r.GET("/healthz", func(ctx http.Context) error {
		return ctx.Result(nethttp.StatusOK, map[string]string{"status": "healthy"})
	})

	r.GET("/stats/{short_code}", func(ctx http.Context) error {
		reply, err := svc.Stats(ctx, ctx.Vars().Get("short_code"))
		if err != nil {
			return err
		}
		return ctx.Result(nethttp.StatusOK, reply)
	})

	r.GET("/{short_code}", func(ctx http.Context) error {
		longURL, err := svc.Resolve(ctx, ctx.Vars().Get("short_code"))
		if err != nil {
			return err
		}
		nethttp.Redirect(ctx.Response(), ctx.Request(), longURL, nethttp.StatusFound)
		return nil
	})
}
