package worker

import (
	"context"
	"log"
	"time"

	"github.com/tvhub/internal/service"
)

// AnalyticsWorker refreshes the channel-performance snapshot on a fixed
// interval so the cached report and the live feed stay warm
type AnalyticsWorker struct {
	analyticsService *service.AnalyticsService
	interval         time.Duration
	stopChan         chan struct{}
}

// NewAnalyticsWorker creates a new snapshot refresh worker
func NewAnalyticsWorker(analyticsService *service.AnalyticsService, interval time.Duration) *AnalyticsWorker {
	if interval <= 0 {
		interval = 5 * time.Minute // Default refresh interval
	}
	return &AnalyticsWorker{
		analyticsService: analyticsService,
		interval:         interval,
		stopChan:         make(chan struct{}),
	}
}

// Start begins the refresh loop. An immediate refresh warms the cache
// before the first tick.
func (w *AnalyticsWorker) Start() {
	log.Printf("Analytics Worker started with interval: %v", w.interval)
	w.refresh()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh()
		case <-w.stopChan:
			log.Println("Analytics Worker stopped")
			return
		}
	}
}

// Stop stops the refresh loop
func (w *AnalyticsWorker) Stop() {
	close(w.stopChan)
}

func (w *AnalyticsWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := w.analyticsService.RefreshSnapshot(ctx); err != nil {
		log.Printf("Analytics Worker: snapshot refresh failed: %v", err)
	}
}
