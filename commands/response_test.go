package commands

import (
	"errors"
	"testing"
)

func TestApiResponse(t *testing.T) {
	ok := Succeed(Unit{})
	if !ok.Succeeded() || ok.Err() != nil {
		t.Fatalf("expected success, got %v", ok.Err())
	}

	boom := errors.New("boom")
	failed := Fail[int](boom)
	if failed.Succeeded() {
		t.Fatal("expected failure")
	}
	if !errors.Is(failed.Err(), boom) {
		t.Fatalf("expected wrapped error, got %v", failed.Err())
	}
	if failed.Value() != 0 {
		t.Fatalf("expected zero value, got %d", failed.Value())
	}

	if Fail[Unit](nil).Succeeded() {
		t.Fatal("expected Fail(nil) to still fail")
	}
}

func TestErrorKinds(t *testing.T) {
	if !IsBadRequest(badRequest("invalid plan_id %d", 0)) {
		t.Fatal("expected bad request")
	}
	if !IsNotFound(notFound("user %d", 1)) {
		t.Fatal("expected not found")
	}
	if IsNotFound(badRequest("x")) || IsBadRequest(notFound("x")) {
		t.Fatal("error kinds must not overlap")
	}
}
