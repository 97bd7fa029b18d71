package main

import (
	"context"
	"time"

	"market-charts/src/config"
	"market-charts/src/grpc_control"
	"market-charts/src/logger"
	"market-charts/src/server"
	"market-charts/src/storage"
)

// -----------------------------------------------------------------------------

// runningServers keeps what must be stopped on shutdown
type runningServers struct {
	api       *server.APIServer
	control   *grpc_control.ControlServer
	retention *storage.Retention
	errs      chan error
}

// -----------------------------------------------------------------------------

// startServers orchestrates the startup of all server components
func startServers(srv *server.APIServer, retention *storage.Retention, conf *config.Config, appLogger *logger.Logger) *runningServers {
	running := &runningServers{
		api:       srv,
		retention: retention,
		errs:      make(chan error, 2),
	}

	// 1. HTTP API
	appLogger.Info("HTTP API listening on %s:%d", conf.Host, conf.Port)
	go func() {
		if err := srv.Start(); err != nil {
			running.errs <- err
		}
	}()

	// 2. gRPC health server (grpc_port 0 disables it)
	if conf.GrpcPort != 0 {
		appLogger.Info("gRPC health listening on %s:%d", conf.GrpcHost, conf.GrpcPort)
		running.control = grpc_control.NewControlServer(logger.NewLogger(conf, "ControlServer"))
		go func() {
			if err := running.control.ListenAndServe(conf.GrpcHost, conf.GrpcPort); err != nil {
				running.errs <- err
			}
		}()
	}

	// 3. Journal retention
	if retention != nil {
		retention.Start()
	}

	return running
}

// -----------------------------------------------------------------------------

// stop shuts everything down, HTTP last so in-flight chart requests can finish
func (r *runningServers) stop(appLogger *logger.Logger) {
	if r.control != nil {
		r.control.SetServing(false)
	}
	if r.retention != nil {
		r.retention.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := r.api.Stop(ctx); err != nil {
		appLogger.Error("HTTP shutdown: %v", err)
	}

	if r.control != nil {
		r.control.Stop()
	}
}
