package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"planroster/commands"
	dbpkg "planroster/db"
	"planroster/logger"
	"planroster/testutil"
)

func TestAssignUser_InvalidIDs_ReturnsBadRequest(t *testing.T) {
	for _, id := range invalidIDs {
		cases := map[string]commands.AssignUserCommand{
			"plan_id":      {UserID: 1, PlanID: id, ProcedureID: 2},
			"user_id":      {UserID: id, PlanID: 1, ProcedureID: 2},
			"procedure_id": {UserID: 2, PlanID: 1, ProcedureID: id},
		}
		for field, cmd := range cases {
			t.Run(fmt.Sprintf("%s=%d", field, id), func(t *testing.T) {
				svc, _ := newService(t)
				res := svc.AssignUser(context.Background(), cmd)
				expectKind(t, res, commands.ErrBadRequest)
				if !strings.Contains(res.Err().Error(), field) {
					t.Fatalf("expected error to name %s, got %v", field, res.Err())
				}
			})
		}
	}
}

func TestAssignUser_InvalidIDs_IgnoresStorage(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 1)
	testutil.SeedPlanProcedure(t, database, 1, 1)

	expectKind(t, svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 1, PlanID: 0, ProcedureID: 1}), commands.ErrBadRequest)
	if n := testutil.CountAllAssignedUsers(t, database); n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestAssignUser_UserNotFound_ReturnsNotFound(t *testing.T) {
	for _, userID := range []int64{3, 2} {
		t.Run(fmt.Sprint(userID), func(t *testing.T) {
			svc, database := newService(t)
			testutil.SeedPlan(t, database, 1)
			testutil.SeedProcedure(t, database, 2)

			res := svc.AssignUser(context.Background(),
				commands.AssignUserCommand{UserID: userID, PlanID: 1, ProcedureID: 2})
			expectKind(t, res, commands.ErrNotFound)
		})
	}
}

func TestAssignUser_UserAndPlanProcedureMissing_ReportsUser(t *testing.T) {
	svc, _ := newService(t)

	res := svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 5, PlanID: 6, ProcedureID: 7})
	expectKind(t, res, commands.ErrNotFound)
	if !strings.Contains(res.Err().Error(), "user 5") {
		t.Fatalf("expected the missing user to be reported first, got %v", res.Err())
	}
}

func TestAssignUser_PlanProcedureNotFound_ReturnsNotFound(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 2)
	testutil.SeedProcedure(t, database, 3)

	res := svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 1, PlanID: 2, ProcedureID: 3})
	expectKind(t, res, commands.ErrNotFound)
	if !strings.Contains(res.Err().Error(), "plan 2 procedure 3") {
		t.Fatalf("expected plan procedure in error, got %v", res.Err())
	}
}

func TestAssignUser_UserAlreadyAssigned_ReturnsSuccess(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 1)
	testutil.SeedPlanProcedure(t, database, 1, 1)
	testutil.SeedAssignedUser(t, database, 1, 1, 1)

	expectSuccess(t, svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1}))
	if n := testutil.CountAssignedUsers(t, database, 1, 1); n != 1 {
		t.Fatalf("expected exactly one row, got %d", n)
	}
}

func TestAssignUser_UserAssigned_ReturnsSuccess(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 2)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 3)
	testutil.SeedPlanProcedure(t, database, 1, 3)

	res := svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 2, PlanID: 1, ProcedureID: 3})
	expectSuccess(t, res)
	if res.Value() != (commands.Unit{}) {
		t.Fatalf("expected unit value, got %v", res.Value())
	}

	store := dbpkg.NewStore(database)
	if _, found, err := store.FindAssignedUser(2, 1, 3); err != nil || !found {
		t.Fatalf("expected assignment to be stored, found=%v err=%v", found, err)
	}
	if n := testutil.CountAllAssignedUsers(t, database); n != 1 {
		t.Fatalf("expected exactly one row, got %d", n)
	}
}

func TestAssignUser_ConcurrentDuplicate_IsAbsorbed(t *testing.T) {
	database := testutil.DB(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 1)
	testutil.SeedPlanProcedure(t, database, 1, 1)
	testutil.SeedAssignedUser(t, database, 1, 1, 1)

	svc := commands.New(staleStore{dbpkg.NewStore(database)}, logger.Nop())
	expectSuccess(t, svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1}))
	if n := testutil.CountAssignedUsers(t, database, 1, 1); n != 1 {
		t.Fatalf("expected the unique index to keep one row, got %d", n)
	}
}

func TestAssignUser_CancelledContext_WritesNothing(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 1)
	testutil.SeedPlanProcedure(t, database, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.AssignUser(ctx, commands.AssignUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1})
	if res.Succeeded() || !errors.Is(res.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.Err())
	}
	if n := testutil.CountAllAssignedUsers(t, database); n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestAssignUser_StorageFailure_IsUnclassified(t *testing.T) {
	database := testutil.DB(t)
	svc := commands.New(brokenStore{dbpkg.NewStore(database)}, logger.Nop())

	res := svc.AssignUser(context.Background(),
		commands.AssignUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1})
	if res.Succeeded() {
		t.Fatal("expected failure")
	}
	if commands.IsBadRequest(res.Err()) || commands.IsNotFound(res.Err()) {
		t.Fatalf("expected an unclassified error, got %v", res.Err())
	}
	if !errors.Is(res.Err(), errStorage) {
		t.Fatalf("expected the storage error to be wrapped, got %v", res.Err())
	}
}

func TestAssignAndRemove_Scenario(t *testing.T) {
	svc, database := newService(t)
	testutil.SeedUser(t, database, 1)
	testutil.SeedPlan(t, database, 1)
	testutil.SeedProcedure(t, database, 1)
	testutil.SeedPlanProcedure(t, database, 1, 1)
	ctx := context.Background()

	assign := commands.AssignUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1}
	remove := commands.RemoveAssignedUserCommand{UserID: 1, PlanID: 1, ProcedureID: 1}

	expectSuccess(t, svc.AssignUser(ctx, assign))
	if n := testutil.CountAllAssignedUsers(t, database); n != 1 {
		t.Fatalf("after first assign: expected 1 row, got %d", n)
	}

	expectSuccess(t, svc.AssignUser(ctx, assign))
	if n := testutil.CountAllAssignedUsers(t, database); n != 1 {
		t.Fatalf("after second assign: expected 1 row, got %d", n)
	}

	expectSuccess(t, svc.RemoveAssignedUser(ctx, remove))
	if n := testutil.CountAllAssignedUsers(t, database); n != 0 {
		t.Fatalf("after remove: expected 0 rows, got %d", n)
	}

	expectKind(t, svc.RemoveAssignedUser(ctx, remove), commands.ErrNotFound)
}
