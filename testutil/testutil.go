package testutil

import (
	"testing"

	dbpkg "planroster/db"
	"planroster/models"

	"github.com/jinzhu/gorm"
)

// DB opens a private in-memory sqlite database with the schema migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	database, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	// Every new connection to :memory: is a new, empty database.
	database.DB().SetMaxOpenConns(1)
	database.LogMode(false)

	if err := dbpkg.Migrate(database); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close() })
	return database
}

func SeedUser(tb testing.TB, db *gorm.DB, id int64) *models.User {
	tb.Helper()
	u := &models.User{ID: id, Name: "user"}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPlan(tb testing.TB, db *gorm.DB, id int64) *models.Plan {
	tb.Helper()
	p := &models.Plan{ID: id}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed plan: %v", err)
	}
	return p
}

func SeedProcedure(tb testing.TB, db *gorm.DB, id int64) *models.Procedure {
	tb.Helper()
	p := &models.Procedure{ID: id, Title: "procedure"}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed procedure: %v", err)
	}
	return p
}

func SeedPlanProcedure(tb testing.TB, db *gorm.DB, planID, procedureID int64) *models.PlanProcedure {
	tb.Helper()
	l := &models.PlanProcedure{PlanID: planID, ProcedureID: procedureID}
	if err := db.Create(l).Error; err != nil {
		tb.Fatalf("seed plan procedure: %v", err)
	}
	return l
}

func SeedAssignedUser(tb testing.TB, db *gorm.DB, userID, planID, procedureID int64) *models.AssignedUser {
	tb.Helper()
	a := &models.AssignedUser{UserID: userID, PlanID: planID, ProcedureID: procedureID}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed assigned user: %v", err)
	}
	return a
}

// SeedSiblings stores user 1, plans 1-2, procedures 1-2, the plan procedures
// (1,1) (1,2) (2,1) and user 1 assigned to each of them.
func SeedSiblings(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	SeedUser(tb, db, 1)
	SeedPlan(tb, db, 1)
	SeedPlan(tb, db, 2)
	SeedProcedure(tb, db, 1)
	SeedProcedure(tb, db, 2)
	for _, pp := range [][2]int64{{1, 1}, {1, 2}, {2, 1}} {
		SeedPlanProcedure(tb, db, pp[0], pp[1])
		SeedAssignedUser(tb, db, 1, pp[0], pp[1])
	}
}

func CountAssignedUsers(tb testing.TB, db *gorm.DB, planID, procedureID int64) int {
	tb.Helper()
	var n int
	if err := db.Model(&models.AssignedUser{}).
		Where("plan_id = ? AND procedure_id = ?", planID, procedureID).
		Count(&n).Error; err != nil {
		tb.Fatalf("count assigned users: %v", err)
	}
	return n
}

func CountAllAssignedUsers(tb testing.TB, db *gorm.DB) int {
	tb.Helper()
	var n int
	if err := db.Model(&models.AssignedUser{}).Count(&n).Error; err != nil {
		tb.Fatalf("count assigned users: %v", err)
	}
	return n
}
