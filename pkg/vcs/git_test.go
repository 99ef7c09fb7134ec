package vcs_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(dir string, args ...string) error {
	return m.Called(dir, args).Error(0)
}

func TestAcquireClonesAbsentTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "src", "test_1.0_dev")
	runner := new(MockRunner)
	runner.On("Run", "", []string{"clone", "https://example/repo.git", target}).Return(nil)
	runner.On("Run", target, []string{"checkout", "dev"}).Return(nil)

	got, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "dev", target, true)

	require.NoError(t, err)
	assert.Equal(t, target, got)
	runner.AssertExpectations(t)
}

func TestAcquireSkipsCheckoutWithoutBranch(t *testing.T) {
	target := filepath.Join(t.TempDir(), "checkout")
	runner := new(MockRunner)
	runner.On("Run", "", []string{"clone", "https://example/repo.git", target}).Return(nil)

	_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "", target, false)

	require.NoError(t, err)
	runner.AssertExpectations(t)
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestAcquireExistingWithoutPullIsNoop(t *testing.T) {
	target := t.TempDir()
	runner := new(MockRunner)
	g := vcs.New(vcs.Options{Runner: runner})

	for i := 0; i < 2; i++ {
		got, err := g.Acquire("https://example/repo.git", "dev", target, false)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestAcquireExistingWithPull(t *testing.T) {
	target := t.TempDir()
	runner := new(MockRunner)
	runner.On("Run", target, []string{"pull"}).Return(nil)

	_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "dev", target, true)

	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestAcquireErrorCodes(t *testing.T) {
	failure := assert.AnError

	t.Run("clone", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "absent")
		runner := new(MockRunner)
		runner.On("Run", "", mock.Anything).Return(failure)

		_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "dev", target, true)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
		runner.AssertNumberOfCalls(t, "Run", 1)
	})

	t.Run("pull", func(t *testing.T) {
		target := t.TempDir()
		runner := new(MockRunner)
		runner.On("Run", target, []string{"pull"}).Return(failure)

		_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "", target, true)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUpdateFailed))
	})

	t.Run("checkout", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "absent")
		runner := new(MockRunner)
		runner.On("Run", "", mock.Anything).Return(nil)
		runner.On("Run", target, []string{"checkout", "nope"}).Return(failure)

		_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "nope", target, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCheckoutFailed))
		assert.ErrorIs(t, err, failure)
	})
}

// gitRepo creates a repository whose default branch holds README and whose
// dev branch adds DEV.
func TestAcquireUninspectableTarget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain-file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	target := filepath.Join(file, "checkout")
	runner := new(MockRunner)

	_, err := vcs.New(vcs.Options{Runner: runner}).Acquire("https://example/repo.git", "dev", target, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.False(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestAcquireReportsProgress(t *testing.T) {
	t.Run("clone", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "clone")
		runner := new(MockRunner)
		runner.On("Run", "", []string{"clone", "https://example/repo.git", target}).Return(nil)
		runner.On("Run", target, []string{"checkout", "dev"}).Return(nil)

		var out bytes.Buffer
		_, err := vcs.New(vcs.Options{Runner: runner, Out: &out}).Acquire("https://example/repo.git", "dev", target, false)
		require.NoError(t, err)
		assert.Equal(t, "Cloning repo: https://example/repo.git (branch: dev)\n", out.String())
	})

	t.Run("pull", func(t *testing.T) {
		target := t.TempDir()
		runner := new(MockRunner)
		runner.On("Run", target, []string{"pull"}).Return(nil)

		var out bytes.Buffer
		_, err := vcs.New(vcs.Options{Runner: runner, Out: &out}).Acquire("https://example/repo.git", "", target, true)
		require.NoError(t, err)
		assert.Equal(t, "Pulling latest changes in directory: "+target+"\n", out.String())
	})

	t.Run("skip", func(t *testing.T) {
		target := t.TempDir()
		var out bytes.Buffer
		_, err := vcs.New(vcs.Options{Runner: new(MockRunner), Out: &out}).Acquire("https://example/repo.git", "", target, false)
		require.NoError(t, err)
		assert.Equal(t, "Skipping pull; using existing directory: "+target+"\n", out.String())
	})
}

func TestExecRunnerPassesOutputThrough(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	var out bytes.Buffer
	require.NoError(t, vcs.NewExecRunner(&out).Run("", "--version"))
	assert.Contains(t, out.String(), "git version")

	out.Reset()
	err := vcs.NewExecRunner(&out).Run(t.TempDir(), "no-such-subcommand")
	require.Error(t, err)
	assert.NotEmpty(t, out.String())
	assert.Contains(t, err.Error(), "no-such-subcommand")
}

func gitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		base := []string{"-c", "user.name=test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false"}
		cmd := exec.Command("git", append(base, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	git("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("main\n"), 0644))
	git("add", "README")
	git("commit", "-q", "-m", "initial")
	git("checkout", "-q", "-b", "dev")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DEV"), []byte("dev\n"), 0644))
	git("add", "DEV")
	git("commit", "-q", "-m", "dev work")
	git("checkout", "-q", "-")

	return dir
}

func TestGitAcquireRealRepository(t *testing.T) {
	origin := gitRepo(t)
	g := vcs.New(vcs.Options{})

	t.Run("clone default branch", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "plain")
		_, err := g.Acquire(origin, "", target, false)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(target, "README"))
		assert.NoFileExists(t, filepath.Join(target, "DEV"))
	})

	t.Run("clone and check out branch then pull", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "dev")
		_, err := g.Acquire(origin, "dev", target, false)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(target, "DEV"))

		_, err = g.Acquire(origin, "dev", target, true)
		require.NoError(t, err)
	})

	t.Run("missing branch", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "missing")
		_, err := g.Acquire(origin, "no-such-branch", target, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCheckoutFailed))
	})

	t.Run("missing origin", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "none")
		_, err := g.Acquire(filepath.Join(t.TempDir(), "nowhere"), "", target, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
		assert.NoDirExists(t, target)
	})
}
