package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "DiagnosticSeverity(7)", DiagnosticSeverity(7).String())

	text, err := DiagnosticError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	d.AddWarning("namespace_collision", "same package", "HttpServer", "")
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddError(CodeMissingTarget, "no target", "Life", "Born")
	assert.True(t, d.HasErrors())
	assert.True(t, d.HasCode(CodeMissingTarget))
	assert.Len(t, d.ForEnum("Life").Errors, 1)
	assert.Empty(t, d.ForEnum("HttpServer").Errors)

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[Life] Born")
	assert.Contains(t, err.Error(), "[missing_target] no target")
}
