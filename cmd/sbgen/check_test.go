package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSoundboard(t *testing.T, mappings string, wavs ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mappings.csv"), []byte(mappings), 0o644))
	for _, w := range wavs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, w), nil, 0o644))
	}

	return dir
}

func runCheckOn(t *testing.T, dir string) (string, error) {
	t.Helper()
	flagDir, flagInput = dir, "mappings.csv"
	t.Cleanup(func() { flagDir, flagInput = "", "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runCheck(cmd, nil)

	return buf.String(), err
}

func TestRunCheck_InvalidRecordsFail(t *testing.T) {
	dir := writeSoundboard(t, "main,13,press,play,a.wav\nmain,1,press,play,a.wav\n", "a.wav")

	out, err := runCheckOn(t, dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 record(s) with errors")
	assert.Contains(t, err.Error(), "invalid button number: 13 (must be 1-12)")
	assert.Contains(t, out, "ERROR line 1: main,13,press,play,a.wav")
	assert.Contains(t, out, "  -> invalid button number: 13 (must be 1-12)")
	assert.Contains(t, out, "1 wav file(s), 1 referenced, 1 record(s) with errors")
}

func TestRunCheck_CleanRunSucceeds(t *testing.T) {
	dir := writeSoundboard(t, "main,1,press,play,a.wav\n", "a.wav")

	out, err := runCheckOn(t, dir)

	require.NoError(t, err)
	assert.Contains(t, out, "1 wav file(s), 1 referenced, 0 record(s) with errors")
}

func TestRunCheck_WarningsDoNotFail(t *testing.T) {
	dir := writeSoundboard(t, "main,1,press,play,a.wav\n", "a.wav", "b.wav")

	out, err := runCheckOn(t, dir)

	require.NoError(t, err)
	assert.Contains(t, out, "WARNING: unmapped file: b.wav")
}
