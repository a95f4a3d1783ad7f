package metrics

import (
	"testing"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_Counters(t *testing.T) {
	m := NewPrometheus(prometheus.NewRegistry())

	m.NotificationDelivered(entity.ActionKindCheckIn)
	m.NotificationDelivered(entity.ActionKindCheckIn)
	m.NotificationDropped(service.DropReasonPermission)
	m.SubmissionFinished(service.OutcomeCommitted)
	m.MediaUploaded(entity.ActionKindPhoto, false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.notificationsDelivered.WithLabelValues("check_in")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notificationsDropped.WithLabelValues("permission")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissionsFinished.WithLabelValues("committed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.mediaUploads.WithLabelValues("photo", "false")), 0)
}

func TestNewRegistry_GathersRuntimeMetrics(t *testing.T) {
	reg := NewRegistry()
	NewPrometheus(reg)

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNoop_SatisfiesInterface(t *testing.T) {
	var m service.CoordinatorMetrics = Noop{}
	m.SubmissionFinished(service.OutcomeAbandoned)
}
