package bms

import (
	"github.com/risingbms/validate"
)

// Appointment lifecycle statuses.
const (
	AppointmentScheduled  = "scheduled"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
	AppointmentNoShow     = "no_show"
)

// AppointmentStatuses lists every valid appointment status.
var AppointmentStatuses = []any{
	AppointmentScheduled,
	AppointmentInProgress,
	AppointmentCompleted,
	AppointmentCancelled,
	AppointmentNoShow,
}

func scheduledAtRule(s Settings, required bool) validate.Rule {
	return validate.Rule{
		Type:     validate.TypeDate,
		Required: required,
		Params:   map[string]any{futureWithinRule: s.ScheduleWindowDays},
		Messages: map[validate.Kind]string{
			validate.Kind(futureWithinRule): "scheduled_at must be a future date inside the booking window",
		},
	}
}

func durationRule(s Settings, withDefault bool) validate.Rule {
	r := validate.Rule{
		Type:    validate.TypeNumber,
		Integer: true,
		Min:     validate.Num(s.DurationMinMinutes),
		Max:     validate.Num(s.DurationMaxMinutes),
	}
	if withDefault {
		r.Default = s.DurationDefaultMinutes
	}
	return r
}

// CreateAppointmentSchema validates the "create an appointment" operation.
func CreateAppointmentSchema(s Settings) validate.Schema {
	return validate.Schema{
		"customer_id":      {Type: validate.TypeUUID, Required: true},
		"scheduled_at":     scheduledAtRule(s, true),
		"duration_minutes": durationRule(s, true),
		"title": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.SubjectMaxLen),
			Transform: nameTransform(),
		},
		"description": {
			Type: validate.TypeString,
			Max:  validate.Num(s.NoteMaxLen),
		},
		"location": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.AddressMaxLen),
			Transform: trimTransform(),
		},
		"assigned_to": {Type: validate.TypeUUID},
	}
}

// UpdateAppointmentSchema validates partial appointment updates.
func UpdateAppointmentSchema(s Settings) validate.Schema {
	return validate.Schema{
		"appointment_id":   {Type: validate.TypeUUID, Required: true},
		"scheduled_at":     scheduledAtRule(s, false),
		"duration_minutes": durationRule(s, false),
		"title": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.SubjectMaxLen),
			Transform: nameTransform(),
		},
		"description": {
			Type: validate.TypeString,
			Max:  validate.Num(s.NoteMaxLen),
		},
		"location": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.AddressMaxLen),
			Transform: trimTransform(),
		},
		"status": {Type: validate.TypeEnum, Enum: AppointmentStatuses},
	}
}

// CancelAppointmentSchema validates a cancellation; the customer is notified
// unless the caller opts out.
func CancelAppointmentSchema(s Settings) validate.Schema {
	return validate.Schema{
		"appointment_id": {Type: validate.TypeUUID, Required: true},
		"reason": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
		"notify_customer": {Type: validate.TypeBoolean, Default: true},
	}
}

// RescheduleAppointmentSchema validates moving an appointment to a new slot.
func RescheduleAppointmentSchema(s Settings) validate.Schema {
	schema := validate.Schema{
		"appointment_id": {Type: validate.TypeUUID, Required: true},
		"reason": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
	r := scheduledAtRule(s, true)
	r.Messages = map[validate.Kind]string{
		validate.Kind(futureWithinRule): "new_scheduled_at must be a future date inside the booking window",
	}
	schema["new_scheduled_at"] = r
	return schema
}

// CompleteAppointmentSchema validates marking an appointment as done.
func CompleteAppointmentSchema(s Settings) validate.Schema {
	return validate.Schema{
		"appointment_id": {Type: validate.TypeUUID, Required: true},
		"notes": {
			Type: validate.TypeString,
			Max:  validate.Num(s.NoteMaxLen),
		},
		"follow_up_required": {Type: validate.TypeBoolean, Default: false},
	}
}
