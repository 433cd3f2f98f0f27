package router

import (
	"context"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after the handler. A returned error stops the
// request and is written to the client.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs at the end of a request, after the response is
// written.
type CloserFunc func(ctx context.Context)

type Router struct {
	// ctx holds the values shared by every request, they are copied into the
	// context of each request.
	ctx   context.Context
	inner gin.IRouter

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.NoRoute(func(c *gin.Context) {
		writeError(c, errorx.New(errorx.NotFound, "Not found %s", c.Request.URL.Path))
	})

	return &Router{ctx: ctx, inner: engine}
}

// Branch returns a router sharing the routes of r. Middlewares added to the
// branch do not affect r.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		inner:   r.inner,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware ...MiddlewareFunc) {
	r.befores = append(r.befores, middleware...)
}

func (r *Router) After(middleware ...MiddlewareFunc) {
	r.afters = append(r.afters, middleware...)
}

func (r *Router) AddCloser(closer ...CloserFunc) {
	r.closers = append(r.closers, closer...)
}

func (r *Router) Handler() http.Handler {
	return r.inner.(*gin.Engine)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) newContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	ctx = xcontext.WithConfigs(ctx, xcontext.Configs(r.ctx))
	ctx = xcontext.WithLogger(ctx, xcontext.Logger(r.ctx))
	if db := xcontext.DB(r.ctx); db != nil {
		ctx = xcontext.WithDB(ctx, db)
	}

	ctx = xcontext.WithHTTPRequest(ctx, c.Request)
	ctx = xcontext.WithHTTPWriter(ctx, c.Writer)
	return ctx
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := router.newContext(c)
		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		var err error
		for _, before := range router.befores {
			if ctx, err = runMiddleware(ctx, before); err != nil {
				break
			}
		}

		if err == nil {
			var req Request
			if err = bind(c, method, &req); err == nil {
				var resp *Response
				if resp, err = handler(ctx, &req); err == nil {
					ctx = xcontext.WithResponse(ctx, resp)
				}
			}
		}

		if err == nil {
			for _, after := range router.afters {
				if ctx, err = runMiddleware(ctx, after); err != nil {
					break
				}
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(c, err)
			return
		}

		writeResponse(c, xcontext.Response(ctx))
	}
}

// runMiddleware keeps the current context when the middleware returns a nil
// one.
func runMiddleware(ctx context.Context, middleware MiddlewareFunc) (context.Context, error) {
	newCtx, err := middleware(ctx)
	if newCtx == nil {
		return ctx, err
	}

	return newCtx, err
}

func bind(c *gin.Context, method string, req any) error {
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(req); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid path: %v", err)
		}
	}

	switch method {
	case http.MethodGet:
		if err := c.ShouldBindQuery(req); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid query: %v", err)
		}
	case http.MethodPost:
		if c.Request.ContentLength == 0 {
			return nil
		}

		if err := c.ShouldBind(req); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid body: %v", err)
		}
	default:
		return errorx.New(errorx.NotImplemented, "Unsupported method %s", method)
	}

	return nil
}
