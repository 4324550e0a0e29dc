package timing

import "testing"

func TestTrackReturnsCallableStopFunc(t *testing.T) {
	stop := Track("unit-test")
	stop()
}
