package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/alfredjeanlab/touchgrass/internal/store"
)

func openTemp(t *testing.T) (*Backend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchgrass.db")
	b, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return b, path
}

func TestBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b, _ := openTemp(t)
	defer b.Close()

	if got, err := b.Get(ctx, "config"); err != nil || got != nil {
		t.Fatalf("Get(missing) = %q, %v; want nil, nil", got, err)
	}
	if err := b.Set(ctx, "config", []byte(`{}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := b.Get(ctx, "config"); err != nil || string(got) != `{}` {
		t.Fatalf("Get = %q, %v", got, err)
	}
	if err := b.Remove(ctx, "config"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := b.Remove(ctx, "config"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if got, _ := b.Get(ctx, "config"); got != nil {
		t.Fatalf("Get after Remove = %q", got)
	}
}

func TestBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	b, path := openTemp(t)
	s := store.New(b)
	want := model.Storage{UserConfig: model.Config{BlockTimeStart: 540, BlockTimeEnd: 1020, ActiveDays: model.Workdays}, TotalUsage: 12}
	if err := s.Set(ctx, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b2, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	if b2.Path() != path {
		t.Fatalf("Path = %q, want %q", b2.Path(), path)
	}
	got, err := store.New(b2).Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
}

func TestBackend_ReadOnlyDeniesWrites(t *testing.T) {
	ctx := context.Background()
	b, path := openTemp(t)
	if err := b.Set(ctx, "config", []byte(`{}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b.Close()

	ro, err := Open(path, Options{ReadOnly: true})
	if err != nil {
		t.Fatalf("Open read-only: %v", err)
	}
	defer ro.Close()

	if got, err := ro.Get(ctx, "config"); err != nil || string(got) != `{}` {
		t.Fatalf("Get = %q, %v", got, err)
	}
	err = store.New(ro).Set(ctx, model.DefaultStorage())
	if !errors.Is(err, store.ErrWontAllowStorage) {
		t.Fatalf("Set on read-only = %v, want ErrWontAllowStorage", err)
	}
	if !errors.Is(err, store.ErrBackendDenied) {
		t.Fatalf("Set on read-only = %v, want wrapped ErrBackendDenied", err)
	}
}

func TestBackend_Closed(t *testing.T) {
	b, _ := openTemp(t)
	b.Close()

	_, err := store.New(b).Get(context.Background())
	if !errors.Is(err, store.ErrStorageNotFound) {
		t.Fatalf("Get on closed db = %v, want ErrStorageNotFound", err)
	}
}

func TestBackend_CanceledContext(t *testing.T) {
	b, _ := openTemp(t)
	defer b.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Get(ctx, "config"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Get = %v, want context.Canceled", err)
	}
	if err := b.Set(ctx, "config", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Set = %v, want context.Canceled", err)
	}
}

func TestOpen_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "touchgrass.db")
	_, err := Open(path, Options{})
	if !errors.Is(err, store.ErrBackendUnavailable) {
		t.Fatalf("Open = %v, want ErrBackendUnavailable", err)
	}
}

func TestBackend_TransientSharesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "touchgrass.db")

	tracker, err := Open(path, Options{Transient: true, Timeout: 200 * time.Millisecond})
	if err != nil {
		t.Fatalf("Open tracker: %v", err)
	}
	defer tracker.Close()
	cli, err := Open(path, Options{Transient: true, Timeout: 200 * time.Millisecond})
	if err != nil {
		t.Fatalf("Open cli while tracker is open: %v", err)
	}
	defer cli.Close()

	if _, err := store.New(tracker).Update(ctx, store.Increment(1)); err != nil {
		t.Fatalf("tracker Update: %v", err)
	}
	if _, err := store.New(cli).Update(ctx, store.Increment(1)); err != nil {
		t.Fatalf("cli Update: %v", err)
	}
	got, err := store.New(tracker).Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalUsage != 2 {
		t.Fatalf("TotalUsage = %d, want 2", got.TotalUsage)
	}
}

func TestBackend_HeldLockTimesOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touchgrass.db")
	holder, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer holder.Close()

	_, err = Open(path, Options{Timeout: 100 * time.Millisecond})
	if !errors.Is(err, store.ErrBackendUnavailable) {
		t.Fatalf("second Open = %v, want ErrBackendUnavailable", err)
	}
}

func TestBackend_ClosedTransient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touchgrass.db")
	b, err := Open(path, Options{Transient: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b.Close()
	if _, err := b.Get(context.Background(), "config"); !errors.Is(err, store.ErrBackendUnavailable) {
		t.Fatalf("Get after Close = %v, want ErrBackendUnavailable", err)
	}
}
