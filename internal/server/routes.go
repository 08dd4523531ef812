package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// DefaultAllowedOrigin is the origin of the desktop UI during development.
const DefaultAllowedOrigin = "http://localhost:1420"

// NewMux mounts every procedure of the review service and the metrics endpoint.
func NewMux(handler *ReviewHandler, metrics *Metrics) *http.ServeMux {
	options := []connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithInterceptors(metrics.Interceptor(), loggingInterceptor()),
	}

	mux := http.NewServeMux()
	mux.Handle(ProcedureGetConfig, connect.NewUnaryHandler(ProcedureGetConfig, handler.GetConfig, options...))
	mux.Handle(ProcedureSetAPIKey, connect.NewUnaryHandler(ProcedureSetAPIKey, handler.SetAPIKey, options...))
	mux.Handle(ProcedureSetNumOfReviewsPerBatch, connect.NewUnaryHandler(ProcedureSetNumOfReviewsPerBatch, handler.SetNumOfReviewsPerBatch, options...))
	mux.Handle(ProcedureSetTimeBetweenPopupsInMinutes, connect.NewUnaryHandler(ProcedureSetTimeBetweenPopupsInMinutes, handler.SetTimeBetweenPopupsInMinutes, options...))
	mux.Handle(ProcedureSetHideWindowDecorations, connect.NewUnaryHandler(ProcedureSetHideWindowDecorations, handler.SetHideWindowDecorations, options...))
	mux.Handle(ProcedureGetUser, connect.NewUnaryHandler(ProcedureGetUser, handler.GetUser, options...))
	mux.Handle(ProcedureCheckForReviews, connect.NewUnaryHandler(ProcedureCheckForReviews, handler.CheckForReviews, options...))
	mux.Handle(ProcedureGetReviewBatch, connect.NewUnaryHandler(ProcedureGetReviewBatch, handler.GetReviewBatch, options...))
	mux.Handle(ProcedureSubmitReview, connect.NewUnaryHandler(ProcedureSubmitReview, handler.SubmitReview, options...))
	mux.Handle(ProcedureSubmitReviewBatch, connect.NewUnaryHandler(ProcedureSubmitReviewBatch, handler.SubmitReviewBatch, options...))
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// NewHTTPServer serves mux over HTTP/1.1 and cleartext HTTP/2.
func NewHTTPServer(addr string, mux http.Handler, allowedOrigins []string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), allowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version")
		w.Header().Set("Access-Control-Expose-Headers", succeededHeader)
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			res, err := next(ctx, req)
			if err != nil {
				slog.Default().Warn("rpc failed",
					"procedure", req.Spec().Procedure,
					"code", connect.CodeOf(err).String(),
					"error", err,
				)
				return res, err
			}
			slog.Default().Debug("rpc succeeded", "procedure", req.Spec().Procedure)
			return res, nil
		}
	}
}
