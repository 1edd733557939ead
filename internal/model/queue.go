package model

import "time"

// QueueEntry is one walk-in patient waiting to be seen
type QueueEntry struct {
	PatientID PatientID
	ArrivedAt time.Time
}
