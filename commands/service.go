package commands

import (
	"fmt"

	"planroster/logger"
	"planroster/tools"
)

// Service runs the write-side operations against one Store. Build one per
// request: the Store's pending changes are request scoped.
type Service struct {
	store Store
	log   *logger.Logger
}

func New(store Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: store, log: log}
}

type idField struct {
	name  string
	value int64
}

// validateIDs fails on the first invalid id, in argument order.
func validateIDs(fields ...idField) error {
	for _, f := range fields {
		if !tools.ValidID(f.value) {
			return badRequest("invalid %s %d", f.name, f.value)
		}
	}
	return nil
}

func (s *Service) userExists(userID int64) (bool, error) {
	_, found, err := s.store.FindUser(userID)
	if err != nil {
		return false, fmt.Errorf("find user %d: %w", userID, err)
	}
	return found, nil
}

func (s *Service) planProcedureExists(planID, procedureID int64) (bool, error) {
	_, found, err := s.store.FindPlanProcedure(planID, procedureID)
	if err != nil {
		return false, fmt.Errorf("find plan %d procedure %d: %w", planID, procedureID, err)
	}
	return found, nil
}
