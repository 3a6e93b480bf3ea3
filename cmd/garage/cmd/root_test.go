package cmd

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiteelite/garage/internal/config"
	"github.com/whiteelite/garage/internal/infrastructure/output/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv(config.EnvDotenvPath, "")
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvLogLevel, "")
	formatFlag, logLevelFlag = "", ""

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestRoot_DefaultOutput(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Toyota\nCorolla\nToyota\nHilux\n2020\n", out)
}

func TestRoot_JSONOutput(t *testing.T) {
	out, err := execute(t, "--format", "json")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)

	var m models.Message
	require.NoError(t, json.Unmarshal(lines[1], &m))
	assert.Equal(t, "truck", m.Kind)
	assert.JSONEq(t, `{"brand":"Toyota","model":"Hilux","year":2020}`, string(m.Content))
}

func TestRoot_InvalidFlags(t *testing.T) {
	_, err := execute(t, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "car brand", args: []string{"read", "car", "Toyota", "Corolla", "brand"}, want: "Toyota\n"},
		{name: "car model", args: []string{"read", "car", "Toyota", "Corolla", "model"}, want: "Corolla\n"},
		{name: "truck year", args: []string{"read", "truck", "Toyota", "Hilux", "2020", "year"}, want: "2020\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	_, err := execute(t, "read", "car", "Toyota", "Corolla", "year")
	assert.Error(t, err)

	_, err = execute(t, "read", "boat", "Toyota", "Corolla", "brand")
	assert.Error(t, err)

	_, err = execute(t, "read", "truck", "Toyota", "Hilux", "soon", "year")
	assert.Error(t, err)
}
