package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError writes err to the error stream. Server errors keep their code
// and request ID.
func (o *Output) PrintError(err error) {
	var apiErr *APIError
	isAPI := errors.As(err, &apiErr)

	if o.format == "json" {
		body := map[string]string{"message": err.Error()}
		if isAPI {
			body["message"] = apiErr.Message
			body["code"] = apiErr.Code
			if apiErr.RequestID != "" {
				body["request_id"] = apiErr.RequestID
			}
		}
		data, _ := json.Marshal(map[string]any{"error": body})
		fmt.Fprintln(o.errOut, string(data))
		return
	}

	fmt.Fprintf(o.errOut, "Error: %s\n", err)
	if isAPI && apiErr.RequestID != "" {
		fmt.Fprintf(o.errOut, "Request ID: %s\n", apiErr.RequestID)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Doctor:
		o.printDoctor(v)
	case response.AuthResponse:
		o.printDoctor(v.Doctor)
		fmt.Fprintf(o.out, "Token: %s\n", v.SessionToken)
	case response.DoctorList:
		o.printDoctorList(v)
	case response.Patient:
		o.printPatient(v)
	case response.PatientList:
		o.printPatientList(v)
	case response.Appointment:
		o.printAppointment(v)
	case response.AppointmentList:
		o.printAppointmentList(v)
	case response.QueueEntry:
		fmt.Fprintf(o.out, "#%d %s (arrived %s)\n", v.Position, v.PatientID, v.ArrivedAt.Format(time.Kitchen))
	case response.Queue:
		o.printQueue(v)
	case response.Totals:
		o.printTotals(v)
	case response.CredentialCheck:
		if v.Valid {
			fmt.Fprintln(o.out, "valid")
		} else {
			fmt.Fprintln(o.out, "invalid: must be 6 to 12 letters or digits")
		}
	case HealthResult:
		fmt.Fprintf(o.out, "Status: %s\n", v.Status)
		fmt.Fprintf(o.out, "Server: %s (%s)\n", v.Server, v.Latency.Round(time.Millisecond))
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printDoctor(d response.Doctor) {
	fmt.Fprintf(o.out, "Doctor: %s (%s)\n", d.Name, d.ID)
	fmt.Fprintf(o.out, "Username: %s\n", d.Username)
	if d.Phone != "" {
		fmt.Fprintf(o.out, "Phone: %s\n", d.Phone)
	}
	if d.Email != "" {
		fmt.Fprintf(o.out, "Email: %s\n", d.Email)
	}
}

func (o *Output) printDoctorList(l response.DoctorList) {
	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME")
	for _, d := range l.Doctors {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Username, d.Name)
	}
	_ = tw.Flush()
}

func (o *Output) printPatient(p response.Patient) {
	fmt.Fprintf(o.out, "Patient: %s (%s)\n", p.Name, p.ID)
	if p.Phone != "" {
		fmt.Fprintf(o.out, "Phone: %s\n", p.Phone)
	}
	if p.Email != "" {
		fmt.Fprintf(o.out, "Email: %s\n", p.Email)
	}
	if p.Address != "" {
		fmt.Fprintf(o.out, "Address: %s\n", p.Address)
	}
}

func (o *Output) printPatientList(l response.PatientList) {
	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE")
	for _, p := range l.Patients {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Phone)
	}
	_ = tw.Flush()
}

func (o *Output) printAppointment(a response.Appointment) {
	fmt.Fprintf(o.out, "Appointment: %s\n", a.ID)
	fmt.Fprintf(o.out, "Patient: %s\n", a.PatientID)
	fmt.Fprintf(o.out, "Doctor: %s\n", a.DoctorID)
	fmt.Fprintf(o.out, "Starts: %s\n", a.StartsAt.Format(time.RFC3339))
	fmt.Fprintf(o.out, "Status: %s\n", a.Status)
}

func (o *Output) printAppointmentList(l response.AppointmentList) {
	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTS\tPATIENT\tDOCTOR\tSTATUS")
	for _, a := range l.Appointments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.StartsAt.Format(time.RFC3339), a.PatientID, a.DoctorID, a.Status)
	}
	_ = tw.Flush()
}

func (o *Output) printQueue(q response.Queue) {
	if len(q.Entries) == 0 {
		fmt.Fprintln(o.out, "Queue is empty")
		return
	}
	for _, e := range q.Entries {
		fmt.Fprintf(o.out, "#%d %s (arrived %s)\n", e.Position, e.PatientID, e.ArrivedAt.Format(time.Kitchen))
	}
}

func (o *Output) printTotals(t response.Totals) {
	fmt.Fprintf(o.out, "Patients: %d\n", t.Patients)
	fmt.Fprintf(o.out, "Doctors: %d\n", t.Doctors)
	fmt.Fprintf(o.out, "Appointments scheduled: %d\n", t.AppointmentsScheduled)
	fmt.Fprintf(o.out, "Appointments cancelled: %d\n", t.AppointmentsCancelled)
	fmt.Fprintf(o.out, "Queue length: %d\n", t.QueueLength)
}
