package utils

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_WritesRotatedFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "app.log")
	w := SetupLogging(path)
	require.NotNil(t, w)

	log.Println("[Test] hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Test] hello")
}

func TestSetupLogging_Stdout(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	assert.Equal(t, os.Stdout, SetupLogging(""))
}
