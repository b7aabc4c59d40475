package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsUser(t *testing.T) {
	if !IsUser(User("bad flag")) {
		t.Error("Expected User() to be a user error")
	}
	if !IsUser(fmt.Errorf("wrapped: %w", Userf("bad %s", "age"))) {
		t.Error("Expected wrapped user error to be detected")
	}
	if IsUser(errors.New("io failure")) {
		t.Error("Plain errors are not user errors")
	}
	if IsUser(nil) {
		t.Error("nil is not a user error")
	}
}

func TestUserfMessage(t *testing.T) {
	err := Userf("invalid --age %d", -1)
	if err.Error() != "invalid --age -1" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
