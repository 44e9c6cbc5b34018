package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopOpeners(t *testing.T) {
	top := TopOpeners([]string{"crane", "SLATE", "CRANE", "adieu", "slate", "crane"}, 2)
	assert.Equal(t, []WordCount{{Word: "CRANE", Count: 3}, {Word: "SLATE", Count: 2}}, top)
	assert.Nil(t, TopOpeners(nil, 3))
}

func TestRenderOpeners(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderOpeners(&buf, []WordCount{{Word: "CRANE", Count: 10}, {Word: "ADIEU", Count: 2}}))
	assert.Contains(t, buf.String(), "CRANE    10")
	assert.Contains(t, buf.String(), "ADIEU     2")
}
