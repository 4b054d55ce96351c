package testutils

import (
	"errors"
	"reflect"
	"testing"
)

// AssertEqual fails the test when got and exp are not deeply equal.
func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertErrorIs fails the test when err does not match target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected an error matching %v, got %v", target, err)
	}
}
