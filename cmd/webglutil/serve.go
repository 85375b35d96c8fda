// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// serve serves dir on addr until ctx is done.
func serve(ctx context.Context, addr, dir string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: fileHandler(dir),
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("serving", zap.String("addr", addr), zap.String("dir", dir))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func fileHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		zap.L().Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		files.ServeHTTP(w, r)
	})
}
