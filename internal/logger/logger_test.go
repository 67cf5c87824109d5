package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelByEnv(t *testing.T) {
	testCases := []struct {
		env           string
		expectedDebug bool
	}{
		{env: "dev", expectedDebug: true},
		{env: "prod", expectedDebug: false},
		{env: "", expectedDebug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewTo(&buf, tc.env)

			log.Debug("item added", "id", 38)
			log.Info("item saved", "id", 38)

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			if tc.expectedDebug {
				require.Len(t, lines, 2)
			} else {
				require.Len(t, lines, 1)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
			assert.Equal(t, "item saved", entry["msg"])
			assert.Equal(t, float64(38), entry["id"])
		})
	}
}
