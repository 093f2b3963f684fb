package data

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
	"github.com/aivofinance/aivo/storage"
)

// countingStore wraps a DriveStore and counts update calls, optionally
// failing them.
type countingStore struct {
	interfaces.DriveStore

	mu        sync.Mutex
	updates   int
	updateErr error
}

func (c *countingStore) UpdateFile(ctx context.Context, fileID string, doc *models.AppData) error {
	c.mu.Lock()
	c.updates++
	err := c.updateErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.DriveStore.UpdateFile(ctx, fileID, doc)
}

func (c *countingStore) updateCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updates
}

func newTestService(t *testing.T, delay time.Duration) (*Service, *countingStore) {
	t.Helper()
	logger := common.NewSilentLogger()
	store := &countingStore{DriveStore: storage.NewMemoryStore(logger, 0)}
	return NewService(store, logger, WithSaveDelay(delay)), store
}

func TestLoadWithoutFileReturnsNotFound(t *testing.T) {
	svc, _ := newTestService(t, DefaultSaveDelay)

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrFileNotFound)

	_, err = svc.Snapshot()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestInitializeThenLoad(t *testing.T) {
	svc, _ := newTestService(t, DefaultSaveDelay)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx, "EUR"))

	doc, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "EUR", doc.Settings.BaseCurrency)
	assert.Equal(t, models.CurrentVersion, doc.Version)

	// A fresh session over the same store finds the document.
	other := NewService(svc.store, common.NewSilentLogger())
	require.NoError(t, other.Load(ctx))
	reloaded, err := other.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "EUR", reloaded.Settings.BaseCurrency)
}

func TestLoadMigratesOldDocument(t *testing.T) {
	logger := common.NewSilentLogger()
	store := &countingStore{DriveStore: storage.NewMemoryStore(logger, 0)}
	ctx := context.Background()

	old := &models.AppData{Settings: models.Settings{BaseCurrency: "USD"}}
	_, err := store.CreateFile(ctx, old)
	require.NoError(t, err)

	svc := NewService(store, logger)
	require.NoError(t, svc.Load(ctx))

	doc, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, models.CurrentVersion, doc.Version)
	assert.NotNil(t, doc.Wallets)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	svc, _ := newTestService(t, DefaultSaveDelay)
	require.NoError(t, svc.Initialize(context.Background(), "USD"))

	first, err := svc.Snapshot()
	require.NoError(t, err)
	first.Settings.BaseCurrency = "JPY"
	first.Wallets = append(first.Wallets, models.Wallet{ID: "w1", Name: "Cash"})

	second, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "USD", second.Settings.BaseCurrency)
	assert.Empty(t, second.Wallets)
}

func TestReplaceDebouncesWrites(t *testing.T) {
	svc, store := newTestService(t, 30*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx, "USD"))

	// A burst of replacements within the window collapses into one write
	// of the latest document.
	for i := 0; i < 5; i++ {
		doc, err := svc.Snapshot()
		require.NoError(t, err)
		doc.Wallets = append(doc.Wallets, models.Wallet{ID: "w1", Name: "Cash"})
		svc.Replace(doc)
	}

	assert.Eventually(t, func() bool {
		return store.updateCount() == 1
	}, time.Second, 5*time.Millisecond)

	// No further writes arrive after the burst settles.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, store.updateCount())
	assert.NoError(t, svc.LastSaveError())
}

func TestFlushWritesImmediately(t *testing.T) {
	svc, store := newTestService(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx, "USD"))

	doc, err := svc.Snapshot()
	require.NoError(t, err)
	doc.Settings.BaseCurrency = "GBP"
	svc.Replace(doc)

	require.NoError(t, svc.Flush(ctx))
	assert.Equal(t, 1, store.updateCount())

	// Nothing pending, flush is a no-op.
	require.NoError(t, svc.Flush(ctx))
	assert.Equal(t, 1, store.updateCount())

	other := NewService(store, common.NewSilentLogger())
	require.NoError(t, other.Load(ctx))
	reloaded, err := other.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "GBP", reloaded.Settings.BaseCurrency)
}

func TestFailedSaveKeepsDocument(t *testing.T) {
	svc, store := newTestService(t, 10*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx, "USD"))

	store.mu.Lock()
	store.updateErr = errors.New("drive unavailable")
	store.mu.Unlock()

	doc, err := svc.Snapshot()
	require.NoError(t, err)
	doc.Settings.BaseCurrency = "CHF"
	svc.Replace(doc)

	assert.Eventually(t, func() bool {
		return svc.LastSaveError() != nil
	}, time.Second, 5*time.Millisecond)

	// In-memory state survives the failed write.
	current, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "CHF", current.Settings.BaseCurrency)

	// The store recovers and the next flush succeeds.
	store.mu.Lock()
	store.updateErr = nil
	store.mu.Unlock()
	svc.Replace(current)
	require.NoError(t, svc.Flush(ctx))
	assert.NoError(t, svc.LastSaveError())
}
