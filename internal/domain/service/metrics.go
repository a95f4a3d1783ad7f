package service

import "carebridge/internal/domain/entity"

// Reasons a change-feed event produced no notification
const (
	DropReasonSelf       = "self"
	DropReasonIrrelevant = "irrelevant"
	DropReasonLookup     = "lookup_error"
	DropReasonPermission = "permission"
	DropReasonSink       = "sink_error"
)

// Submission outcomes
const (
	OutcomeCommitted    = "committed"
	OutcomeBypassed     = "bypassed"
	OutcomeAdError      = "ad_error"
	OutcomeAbandoned    = "abandoned"
	OutcomeUploadFailed = "upload_failed"
	OutcomeInsertFailed = "insert_failed"
)

// CoordinatorMetrics records notification and submission counters.
type CoordinatorMetrics interface {
	NotificationDelivered(kind entity.ActionKind)
	NotificationDropped(reason string)
	SubmissionFinished(outcome string)
	MediaUploaded(kind entity.ActionKind, success bool)
}
