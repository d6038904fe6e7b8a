package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRecordsBothCollectors(t *testing.T) {
	before := testutil.ToFloat64(SpansEmitted.WithLabelValues("test-lang"))
	Observe("test-lang", 5*time.Millisecond, 7)
	after := testutil.ToFloat64(SpansEmitted.WithLabelValues("test-lang"))
	if after-before != 7 {
		t.Errorf("SpansEmitted delta = %v, want 7", after-before)
	}

	count := testutil.CollectAndCount(HighlightDuration)
	if count == 0 {
		t.Errorf("expected HighlightDuration to have observations after Observe")
	}
}
