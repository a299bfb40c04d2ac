package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("matches typed pq error", func(t *testing.T) {
		err := &pq.Error{Code: "08P01", Message: "bind message supplies 1 parameters, but prepared statement \"\" requires 2"}
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for typed bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation formation_snapshots does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation formation_snapshots does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatalf("expected unique violation to match")
	}
	if isUniqueViolation(sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows not to match")
	}
}

func TestNullTimeRoundTrip(t *testing.T) {
	if got := timePtr(nullTime(nil)); got != nil {
		t.Fatalf("expected nil time, got %v", got)
	}

	local := time.Date(2026, 7, 1, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	got := timePtr(nullTime(&local))
	if got == nil || !got.Equal(local) || got.Location() != time.UTC {
		t.Fatalf("expected UTC copy of %v, got %v", local, got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
