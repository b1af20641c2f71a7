package constant

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// appointmentTransitions lists the allowed next statuses for each status.
// completed and cancelled are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCancelled, AppointmentStatusCompleted},
	AppointmentStatusCancelled: {},
	AppointmentStatusCompleted: {},
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// CanTransitionAppointment reports whether an appointment may move from
// one status to another.
func CanTransitionAppointment(from, to AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type MeetingPlatform string

const (
	MeetingPlatformZoom   MeetingPlatform = "zoom"
	MeetingPlatformMeet   MeetingPlatform = "meet"
	MeetingPlatformTeams  MeetingPlatform = "teams"
	MeetingPlatformOther  MeetingPlatform = "other"
	DefaultMeetingPlatform                = MeetingPlatformOther
)
