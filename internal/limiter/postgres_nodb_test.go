package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/************ fake pgx ************/
type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	execErr   error
	execSQLs  []string
	querySQLs []string

	consumeErr   error // error returned by the UPDATE ... RETURNING
	consumeStart time.Time
	consumeCount int

	selErr   error
	selStart time.Time
}

func (f *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQLs = append(f.execSQLs, sql)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.querySQLs = append(f.querySQLs, sql)
	switch {
	case strings.Contains(sql, "RETURNING window_start, count"):
		return fakeRow{scan: func(dest ...any) error {
			if f.consumeErr != nil {
				return f.consumeErr
			}
			*(dest[0].(*time.Time)) = f.consumeStart
			*(dest[1].(*int)) = f.consumeCount
			return nil
		}}
	case strings.Contains(sql, "SELECT window_start FROM rate_limits"):
		return fakeRow{scan: func(dest ...any) error {
			if f.selErr != nil {
				return f.selErr
			}
			*(dest[0].(*time.Time)) = f.selStart
			return nil
		}}
	default:
		return fakeRow{scan: func(dest ...any) error { return errors.New("unexpected query") }}
	}
}

var hourly = Policy{MaxRequests: 3, Window: time.Hour}

func TestPGConsume_Allowed(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fp := &fakePool{consumeStart: start, consumeCount: 2}
	s := NewPG(fp)

	d, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, start.Add(time.Minute))
	if err != nil || !d.Allowed || d.Remaining != 1 || !d.ResetAt.Equal(start.Add(time.Hour)) {
		t.Fatalf("consume allowed: d=%+v err=%v", d, err)
	}
	if len(fp.execSQLs) != 1 || !strings.Contains(fp.execSQLs[0], "ON CONFLICT (subject_id, action) DO NOTHING") {
		t.Fatalf("must ensure window row first, exec=%v", fp.execSQLs)
	}
}

func TestPGConsume_WindowRuleInSingleUpdate(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fp := &fakePool{consumeStart: start, consumeCount: 1}
	s := NewPG(fp)

	if _, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, start); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if len(fp.querySQLs) != 1 {
		t.Fatalf("allowed path must be one UPDATE, got %v", fp.querySQLs)
	}
	q := fp.querySQLs[0]
	for _, part := range []string{"UPDATE rate_limits", "count < $5", "THEN 1 ELSE count + 1", "RETURNING window_start, count"} {
		if !strings.Contains(q, part) {
			t.Fatalf("update missing %q:\n%s", part, q)
		}
	}
	for _, sql := range append(fp.execSQLs, fp.querySQLs...) {
		if strings.Contains(sql, "FOR UPDATE") || strings.Contains(sql, "BEGIN") {
			t.Fatalf("no row lock or transaction expected: %s", sql)
		}
	}

	fp = &fakePool{consumeErr: pgx.ErrNoRows, selStart: start}
	if _, err := NewPG(fp).Consume(context.Background(), "u", ActionGeneration, hourly, start); err != nil {
		t.Fatalf("consume full: %v", err)
	}
	if len(fp.querySQLs) != 2 || !strings.HasPrefix(fp.querySQLs[1], "SELECT window_start") {
		t.Fatalf("full window must read window_start after the update, got %v", fp.querySQLs)
	}
}

func TestPGConsume_Full_ReportsReset(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fp := &fakePool{consumeErr: pgx.ErrNoRows, selStart: start}
	s := NewPG(fp)

	d, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, start.Add(time.Minute))
	if err != nil || d.Allowed || d.Remaining != 0 || !d.ResetAt.Equal(start.Add(time.Hour)) {
		t.Fatalf("consume full: d=%+v err=%v", d, err)
	}
}

func TestPGConsume_EnsureError_Propagates(t *testing.T) {
	fp := &fakePool{execErr: errors.New("db down")}
	s := NewPG(fp)

	if _, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, time.Now()); err == nil {
		t.Fatalf("want error from ensure insert")
	}
}

func TestPGConsume_UpdateError_Propagates(t *testing.T) {
	fp := &fakePool{consumeErr: errors.New("query error")}
	s := NewPG(fp)

	if _, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, time.Now()); err == nil {
		t.Fatalf("want error from update")
	}
}

func TestPGConsume_SelectErrorAfterFull(t *testing.T) {
	fp := &fakePool{consumeErr: pgx.ErrNoRows, selErr: errors.New("gone")}
	s := NewPG(fp)

	if _, err := s.Consume(context.Background(), "u", ActionGeneration, hourly, time.Now()); err == nil {
		t.Fatalf("want error from select")
	}
}

func TestPGReset(t *testing.T) {
	fp := &fakePool{}
	s := NewPG(fp)

	if err := s.Reset(context.Background(), "u", ActionLogin); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(fp.execSQLs[0], "DELETE FROM rate_limits") {
		t.Fatalf("unexpected exec: %v", fp.execSQLs)
	}

	fp.execErr = errors.New("exec fail")
	if err := s.Reset(context.Background(), "u", ActionLogin); err == nil {
		t.Fatalf("want exec error")
	}
}
