package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-audio-tools/introfinder/internal/signal"
)

func TestGetIntroFromPairFindsSharedRegion(t *testing.T) {
	const sampleRate float32 = 1024
	const sourceEnd float32 = 60

	size := int(sourceEnd * sampleRate)
	one := make([]float32, size)
	two := make([]float32, size)

	introStart := 10 * int(sampleRate)
	introLen := 24 * int(sampleRate)
	for i := 0; i < introLen; i++ {
		v := float32((i%97)-48) / 48
		one[introStart+i] = v
		two[introStart+i] = v
	}

	info, err := GetIntroFromPair(
		signal.NewFloatSignalFromData(one),
		signal.NewFloatSignalFromData(two),
		4, sourceEnd, sampleRate,
	)
	require.NoError(t, err)
	assert.Greater(t, info.EndTime, info.StartTime)
	assert.GreaterOrEqual(t, info.MatchPercent, float32(0))
}
