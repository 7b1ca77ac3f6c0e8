package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceforma/cpgraph/builder"
)

func TestParseIterationSelector_Empty(t *testing.T) {
	sel, err := parseIterationSelector("")
	require.NoError(t, err)
	assert.Equal(t, builder.IterationSelector{}, sel)
	assert.True(t, sel.IsEmpty())
}

func TestParseIterationSelector_NameAndInstance(t *testing.T) {
	sel, err := parseIterationSelector("train_step:3")
	require.NoError(t, err)
	assert.Equal(t, builder.IterationSelector{Annotation: "train_step", Instance: 3}, sel)
}

func TestParseIterationSelector_MissingColon(t *testing.T) {
	_, err := parseIterationSelector("train_step")
	assert.Error(t, err)
}

func TestParseIterationSelector_NonNumericInstance(t *testing.T) {
	_, err := parseIterationSelector("train_step:abc")
	assert.Error(t, err)
}

func TestFingerprintFile_StableAcrossCalls(t *testing.T) {
	path := writeTempTrace(t, `{"index":1,"name":"k1","category":"device_kernel","ts_ns":0,"duration_ns":10,"stream":1}`+"\n")

	a, err := fingerprintFile(path)
	require.NoError(t, err)
	b, err := fingerprintFile(path)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
