// Package dependency wires core tickertalk services using go.uber.org/dig.
package dependency

import (
	"context"
	"time"

	"go.uber.org/dig"

	"github.com/tickertalk/tickertalk/internal/agent"
	"github.com/tickertalk/tickertalk/internal/bus"
	"github.com/tickertalk/tickertalk/internal/config"
	"github.com/tickertalk/tickertalk/internal/market"
	"github.com/tickertalk/tickertalk/internal/providers"
	"github.com/tickertalk/tickertalk/internal/schema"
	"github.com/tickertalk/tickertalk/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client schema.ModelClient
	store  *market.Store
	msgBus bus.Bus
	loop   *agent.Loop
}

func (c *Container) ModelClient() schema.ModelClient { return c.client }
func (c *Container) MarketStore() *market.Store      { return c.store }
func (c *Container) MessageBus() bus.Bus             { return c.msgBus }
func (c *Container) AgentLoop() *agent.Loop          { return c.loop }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		newModelClient,
		newMarketStore,
		newSettings,
		newToolRegistry,
		newDispatcher,
		newDriver,
		newMessageBus,
		newAgentLoop,
	}
	for _, c := range constructors {
		if err := d.Provide(c); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(
		client schema.ModelClient,
		store *market.Store,
		msgBus bus.Bus,
		loop *agent.Loop,
	) {
		result = &Container{
			client: client,
			store:  store,
			msgBus: msgBus,
			loop:   loop,
		}
	})
	return result, err
}

func newModelClient(cfg *config.Config) (schema.ModelClient, error) {
	return providers.New(context.Background(), providers.Params{
		Name:    cfg.Providers.Name,
		Region:  cfg.Providers.Bedrock.Region,
		APIKey:  cfg.Providers.Anthropic.APIKey,
		APIBase: cfg.Providers.Anthropic.APIBase,
		Timeout: time.Duration(cfg.Agents.Defaults.RequestTimeoutSec) * time.Second,
	})
}

func newMarketStore(cfg *config.Config) (*market.Store, error) {
	return market.Load(cfg.Market.Manifest)
}

func newSettings(cfg *config.Config) schema.AgentSettings {
	def := cfg.Agents.Defaults
	return schema.AgentSettings{
		Model:             def.Model,
		MaxTokens:         def.MaxTokens,
		Temperature:       def.Temperature,
		TopP:              def.TopP,
		MaxToolIterations: def.MaxToolIter,
	}
}

func newToolRegistry(store *market.Store) *tools.Registry {
	return tools.NewDefaultRegistry(store)
}

func newDispatcher(registry *tools.Registry) *agent.Dispatcher {
	return agent.NewDispatcher(registry)
}

func newDriver(
	client schema.ModelClient,
	dispatcher *agent.Dispatcher,
	registry *tools.Registry,
	settings schema.AgentSettings,
) *agent.Driver {
	return agent.NewDriver(client, dispatcher, registry, settings)
}

func newMessageBus() bus.Bus {
	return bus.NewMessageBus(100)
}

func newAgentLoop(b bus.Bus, driver *agent.Driver) *agent.Loop {
	return agent.NewLoop(b, driver)
}
