// Mock helpers required in Callboard tests are all here.

package test

import (
	"Callboard/internal/entity"
	"Callboard/pkg/middlewares"
	"context"
	"sync"

	"github.com/gin-gonic/gin"
)

// NewRouter returns a fresh gin engine in test mode, with the same CORS policy as the server.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.CORSMiddleware("*"))
	return router
}

// Publisher records every event handed to it instead of fanning it out.
type Publisher struct {
	mu     sync.Mutex
	events []entity.Event
}

func (p *Publisher) Publish(ctx context.Context, event entity.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events returns a copy of everything published so far.
func (p *Publisher) Events() []entity.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entity.Event(nil), p.events...)
}
