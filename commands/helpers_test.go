package commands_test

import (
	"errors"
	"math"
	"testing"

	"planroster/commands"
	dbpkg "planroster/db"
	"planroster/logger"
	"planroster/models"
	"planroster/testutil"

	"github.com/jinzhu/gorm"
)

var invalidIDs = []int64{-1, 0, math.MinInt32, math.MinInt64}

func newService(t *testing.T) (*commands.Service, *gorm.DB) {
	t.Helper()
	database := testutil.DB(t)
	return commands.New(dbpkg.NewStore(database), logger.Nop()), database
}

func expectKind(t *testing.T, res commands.ApiResponse[commands.Unit], kind error) {
	t.Helper()
	if res.Succeeded() {
		t.Fatalf("expected %v, got success", kind)
	}
	if !errors.Is(res.Err(), kind) {
		t.Fatalf("expected %v, got %v", kind, res.Err())
	}
}

func expectSuccess(t *testing.T, res commands.ApiResponse[commands.Unit]) {
	t.Helper()
	if !res.Succeeded() {
		t.Fatalf("expected success, got %v", res.Err())
	}
}

// staleStore never sees existing assignments, as a request racing another
// one for the same triple would.
type staleStore struct {
	*dbpkg.Store
}

func (staleStore) FindAssignedUser(int64, int64, int64) (models.AssignedUser, bool, error) {
	return models.AssignedUser{}, false, nil
}

var errStorage = errors.New("storage offline")

type brokenStore struct {
	*dbpkg.Store
}

func (brokenStore) FindUser(int64) (models.User, bool, error) {
	return models.User{}, false, errStorage
}

func (brokenStore) FindAssignedUser(int64, int64, int64) (models.AssignedUser, bool, error) {
	return models.AssignedUser{}, false, errStorage
}

func (brokenStore) FindAssignedUsers(int64, int64) ([]models.AssignedUser, error) {
	return nil, errStorage
}
