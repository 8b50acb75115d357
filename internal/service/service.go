// Package service wires the store, pipeline executor and intake policy into
// the operations exposed over HTTP.
package service

import (
	"github.com/lexandes/agent/internal/catalog"
	"github.com/lexandes/agent/internal/config"
	"github.com/lexandes/agent/internal/executor"
	"github.com/lexandes/agent/internal/repository"
	"github.com/lexandes/agent/policy"
)

type Service struct {
	store    store.Store
	catalog  *catalog.Catalog
	executor *executor.Executor
	policy   *policy.Engine
	config   *config.Config
}

func New(s store.Store, c *catalog.Catalog, exec *executor.Executor, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:    s,
		catalog:  c,
		executor: exec,
		policy:   policyEngine,
		config:   cfg,
	}
}
