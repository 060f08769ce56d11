package queryresponse

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	response := NewQueryResponse("7", "Calculating Something...")
	response.AddLine("Total: %v", 12)
	response.AddLine("Name: %s", "StationA")
	response.SetElapsed(1500 * time.Millisecond)

	var out bytes.Buffer
	require.NoError(t, response.Write(&out))
	text := out.String()

	assert.Equal(t, "7", response.GetQueryID())
	assert.Contains(t, text, "Calculating Something...")
	assert.Contains(t, text, "Total: 12\nName: StationA\n")
	assert.Contains(t, text, "This took 1.5 seconds.")
	assert.True(t, strings.HasSuffix(text, separator+"\n"))
	assert.Less(t, strings.Index(text, "Total"), strings.Index(text, "Name"))
}
