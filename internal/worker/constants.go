package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobRejected = "Worker pool stopped, job dropped"
)

// ============================================================================
// Log Messages - Giveaway Worker
// ============================================================================

// Log messages for giveaway worker operations
const (
	LogMsgRecoveringGiveaways        = "Recovering active giveaways"
	LogMsgFailedToListActiveOnStart  = "Failed to list active giveaways on startup"
	LogMsgSchedulingGiveawayEnd      = "Scheduling giveaway end"
	LogMsgEndingOverdueGiveaway      = "Giveaway overdue, ending now"
	LogMsgTimerCancelled             = "Giveaway timer cancelled"
	LogMsgEndingScheduledGiveaway    = "Ending scheduled giveaway"
	LogMsgScheduledEndAlreadyHandled = "Scheduled giveaway end skipped, already ended or gone"
	LogMsgFailedToEndGiveaway        = "Failed to end giveaway"
	LogMsgSweepFoundDue              = "Sweep found due giveaways"
	LogMsgUnexpectedPayload          = "Ignoring event with unexpected payload"
)

// GiveawayWorkerName is used in worker lifecycle log lines
const GiveawayWorkerName = "giveaway worker"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
