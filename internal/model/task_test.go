package model

import (
	"errors"
	"testing"
)

func TestProgress_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		p := Progress{ETASec: test.etaSec}
		result := p.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestKind_Extension(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindVideo, "mp4"},
		{KindAudio, "mp3"},
	}

	for _, test := range tests {
		if got := test.kind.Extension(); got != test.expected {
			t.Errorf("Kind(%s).Extension() = %s, expected %s", test.kind, got, test.expected)
		}
	}

	if Kind("gif").IsValid() {
		t.Error("Expected unknown kind to be invalid")
	}
}

func TestDownloadJob_Transition(t *testing.T) {
	job := &DownloadJob{ID: "file_1_x", State: JobStateAwaitingChoice}

	if err := job.Transition(JobStateDownloading); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := job.Transition(JobStateDone); err == nil {
		t.Error("Expected error for Downloading -> Done")
	}
	if job.State != JobStateDownloading {
		t.Errorf("Expected state to stay Downloading, got %s", job.State)
	}

	if err := job.Transition(JobStateFailed); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if job.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set on terminal state")
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("HTTP Error 403: Forbidden")

	var extractErr error = &ExtractionError{Err: cause}
	if extractErr.Error() != cause.Error() {
		t.Errorf("Expected message to be preserved, got %q", extractErr.Error())
	}
	if !errors.Is(extractErr, cause) {
		t.Error("Expected ExtractionError to unwrap to its cause")
	}

	var deliveryErr error = &DeliveryError{Reason: "locate result", Err: ErrArtifactNotFound}
	if !errors.Is(deliveryErr, ErrArtifactNotFound) {
		t.Error("Expected DeliveryError to unwrap to ErrArtifactNotFound")
	}
	if deliveryErr.Error() != "locate result: artifact not found" {
		t.Errorf("Unexpected message: %q", deliveryErr.Error())
	}

	cleanupErr := &CleanupError{Op: "delete status", Err: cause}
	if !errors.Is(cleanupErr, cause) {
		t.Error("Expected CleanupError to unwrap to its cause")
	}
}
