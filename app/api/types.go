package api

import (
	"sync"
	"time"

	"github.com/brokerdesk/leadparse/app/extract"
	"github.com/brokerdesk/leadparse/app/lead"
)

type DispatcherInterface interface {
	Run(body string) lead.Lead
}

var _ DispatcherInterface = (*extract.Dispatcher)(nil)

type Handler struct {
	dispatcher DispatcherInterface
	startedAt  time.Time

	mu     sync.Mutex
	parsed map[string]int
}
