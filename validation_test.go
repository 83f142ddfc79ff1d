package daylog

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeRejectsMissingWorkingDir(t *testing.T) {
	l := NewLogger("Worker")
	l.WorkingDir = filepath.Join(t.TempDir(), "does-not-exist")
	l.out = &bytes.Buffer{}
	l.errOut = &bytes.Buffer{}

	err := l.Initialize()
	require.Error(t, err)
	require.Contains(t, err.Error(), errMsgInvalidOptions)
}

func TestValidateOptionsAcceptsAnyOwnerName(t *testing.T) {
	for _, owner := range []string{"", "Worker", "  weird  name\t"} {
		opts := &Options{OwnerName: owner, LogDirName: DefaultLogDirName}
		require.NoError(t, validateOptions(opts))
	}
}

func TestValidateOptionsRequiresLogDirName(t *testing.T) {
	opts := &Options{OwnerName: "Worker"}
	require.Error(t, validateOptions(opts))
}
