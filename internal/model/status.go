package model

// JobState represents the state of a download job
type JobState string

const (
	// JobStateIdle means no link has been submitted yet
	JobStateIdle JobState = "Idle"

	// JobStateAwaitingChoice means a link is stored and the format prompt is shown
	JobStateAwaitingChoice JobState = "AwaitingChoice"

	// JobStateDownloading means the extraction engine is running
	JobStateDownloading JobState = "Downloading"

	// JobStateDelivering means the result file is being sent to the chat
	JobStateDelivering JobState = "Delivering"

	// JobStateDone means the result was delivered
	JobStateDone JobState = "Done"

	// JobStateFailed means the job ended with an error
	JobStateFailed JobState = "Failed"
)

var allowedTransitions = map[JobState][]JobState{
	JobStateIdle:           {JobStateAwaitingChoice},
	JobStateAwaitingChoice: {JobStateDownloading, JobStateFailed},
	JobStateDownloading:    {JobStateDelivering, JobStateFailed},
	JobStateDelivering:     {JobStateDone, JobStateFailed},
}

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsActive returns true while the job holds the engine or the chat upload
func (s JobState) IsActive() bool {
	return s == JobStateDownloading || s == JobStateDelivering
}

// IsFinished returns true if the job is in a terminal state (done or failed)
func (s JobState) IsFinished() bool {
	return s == JobStateDone || s == JobStateFailed
}

// CanTransition reports whether moving from s to next is a legal step
func (s JobState) CanTransition(next JobState) bool {
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
