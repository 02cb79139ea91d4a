package filelock

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, AtomicWrite(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestAtomicWriteOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, AtomicWrite(path, []byte("first")))
	require.NoError(t, AtomicWrite(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestAtomicWriteCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.txt")

	require.NoError(t, AtomicWrite(path, []byte("content")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestFileLockTryLockContention(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resource.lock")

	a := NewFileLock(path)
	require.NoError(t, a.Lock())

	b := NewFileLock(path)
	acquired, err := b.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, a.Unlock())
}

func TestLockAndWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.md")

	require.NoError(t, LockAndWrite(path, []byte("plan body")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plan body", string(data))

	_, err = os.Stat(path + ".lock")
	assert.NoError(t, err, "lock file should remain on disk after unlock (flock does not delete it)")
}

func TestLockAndModifyOnMissingFileSeesNilCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	var sawNil bool
	err := LockAndModify(path, func(current []byte) ([]byte, error) {
		sawNil = current == nil
		return []byte("[]"), nil
	})
	require.NoError(t, err)
	assert.True(t, sawNil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLockAndModifyReadsBackPreviousWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	require.NoError(t, LockAndModify(path, func(current []byte) ([]byte, error) {
		return []byte("a"), nil
	}))
	require.NoError(t, LockAndModify(path, func(current []byte) ([]byte, error) {
		return append(current, 'b'), nil
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))
}

func TestLockAndModifyConcurrentIncrementsDoNotLoseUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counter.txt")
	require.NoError(t, AtomicWrite(path, []byte("0")))

	var wg sync.WaitGroup
	const n = 20
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = LockAndModify(path, func(current []byte) ([]byte, error) {
				count := 0
				for _, b := range current {
					if b >= '0' && b <= '9' {
						count = count*10 + int(b-'0')
					}
				}
				count++
				return []byte(strconv.Itoa(count)), nil
			})
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n), string(data))
}

func TestLockAndAppendLineAppendsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.jsonl")

	require.NoError(t, LockAndAppendLine(path, []byte(`{"n":1}`)))
	require.NoError(t, LockAndAppendLine(path, []byte(`{"n":2}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)
	assert.Equal(t, `{"n":1}`, lines[0])
	assert.Equal(t, `{"n":2}`, lines[1])
}
