package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	var d Diagnostics
	d.AddError("bad slot")
	d.AddWarning("long name")

	var other Diagnostics
	other.AddError("bad event")

	d.Merge(other)

	require.Len(t, d.Errors, 2)
	assert.Equal(t, "bad slot", d.Errors[0].Message)
	assert.Equal(t, "bad event", d.Errors[1].Message)
	assert.Len(t, d.Warnings, 1)
}

func TestError_CombinesMessages(t *testing.T) {
	var d Diagnostics
	d.AddError("bad slot")
	d.AddError("bad event")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "bad slot; bad event", err.Error())
}

func TestError_NilWhenValid(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning("long name")
	assert.NoError(t, d.Error(), "warnings never make a record invalid")
}
