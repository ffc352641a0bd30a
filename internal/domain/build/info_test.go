package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v0.3.0", Commit: "deadbee", BuildDate: "2024-05-01", GoVersion: "go1.25.3"}

	assert.Equal(t, "darkwatch v0.3.0 (deadbee, built 2024-05-01, go1.25.3)", info.String())
}
