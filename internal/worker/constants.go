package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)
