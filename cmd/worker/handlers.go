package main

import (
	"github.com/hibiken/asynq"

	mediaJob "portfolio-backend/internal/domains/media/job"
	"portfolio-backend/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	deleteMediaObjects *mediaJob.DeleteObjectsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(store mediaJob.ObjectRemover) *HandlerRegistry {
	return &HandlerRegistry{
		deleteMediaObjects: mediaJob.NewDeleteObjectsHandler(store),
	}
}

// RegisterHandlers registers every task type on the mux
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeDeleteMediaObjects, r.deleteMediaObjects)
}
