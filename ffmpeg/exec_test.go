package ffmpeg

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ExecTestSuite defines a test suite for external command invocation and
// its error mapping.
type ExecTestSuite struct {
	suite.Suite
}

// SetupTest skips shell-based tests on platforms without /bin/sh.
func (s *ExecTestSuite) SetupTest() {
	if runtime.GOOS == "windows" {
		s.T().Skip("tests rely on /bin/sh")
	}
}

// TestExecuteCommand tests that a successful invocation returns the
// captured standard output.
func (s *ExecTestSuite) TestExecuteCommand() {
	output, err := ExecuteCommand(context.Background(), []string{"/bin/sh", "-c", "echo hello"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "hello\n", output)
}

// TestExecuteCommandEmpty tests that an empty argument sequence is rejected.
func (s *ExecTestSuite) TestExecuteCommandEmpty() {
	_, err := ExecuteCommand(context.Background(), nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "empty command")
}

// TestExecuteCommandNonZeroExit tests that a non-zero exit surfaces a
// CommandError carrying the exact exit code and the captured stderr text,
// and that stdout is discarded in the error case.
func (s *ExecTestSuite) TestExecuteCommandNonZeroExit() {
	output, err := ExecuteCommand(context.Background(),
		[]string{"/bin/sh", "-c", "echo ignored; echo boom >&2; exit 3"})
	require.Error(s.T(), err)
	assert.Empty(s.T(), output)

	var cmdErr *CommandError
	require.ErrorAs(s.T(), err, &cmdErr)
	assert.Equal(s.T(), 3, cmdErr.ExitCode)
	assert.Equal(s.T(), "boom\n", cmdErr.Stderr)
	assert.Contains(s.T(), cmdErr.Error(), "exit code 3")
}

// TestExecuteCommandStartFailure tests that a command which cannot be
// started at all is not reported as a CommandError.
func (s *ExecTestSuite) TestExecuteCommandStartFailure() {
	_, err := ExecuteCommand(context.Background(), []string{"/no/such/binary"})
	require.Error(s.T(), err)

	var cmdErr *CommandError
	assert.False(s.T(), errors.As(err, &cmdErr),
		"a process that never started has no exit code to report")
}

// TestExecuteCommandCancellation tests that a cancelled context
// terminates the child process and fails the call.
func (s *ExecTestSuite) TestExecuteCommandCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecuteCommand(ctx, []string{"/bin/sh", "-c", "sleep 10"})
	require.Error(s.T(), err)
}

// TestExecSuite runs the command invocation test suite.
func TestExecSuite(t *testing.T) {
	suite.Run(t, new(ExecTestSuite))
}
