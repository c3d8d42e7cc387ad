package services

import (
	"sync"
	"time"
)

// AIStatusService keeps the most recent AI health probe result.
// Last write wins; stale reads are acceptable (diagnostics only).
type AIStatusService struct {
	mu        sync.RWMutex
	last      AIHealth
	checkedAt time.Time
}

func NewAIStatusService() *AIStatusService {
	return &AIStatusService{}
}

func (s *AIStatusService) Record(h AIHealth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = h
	s.checkedAt = time.Now()
}

func (s *AIStatusService) Last() (AIHealth, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.checkedAt
}
