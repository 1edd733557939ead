package model

// Totals summarises the clinic's record counts
type Totals struct {
	Patients              int
	Doctors               int
	AppointmentsScheduled int
	AppointmentsCancelled int
	QueueLength           int
}
