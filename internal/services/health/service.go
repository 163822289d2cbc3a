package health

// Service reports process health plus the sizes of the loaded catalogs.
type Service struct {
	actionCount   int
	compoundCount int
}

// NewService constructs a health service over the loaded catalog sizes.
func NewService(actionCount, compoundCount int) *Service {
	return &Service{actionCount: actionCount, compoundCount: compoundCount}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":              true,
		"actionCount":     s.actionCount,
		"compoundActions": s.compoundCount,
	}
}
