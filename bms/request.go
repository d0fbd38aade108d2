package bms

import (
	"github.com/risingbms/validate"
)

// Service request priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// RequestPriorities lists every valid request priority.
var RequestPriorities = []any{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// Service request lifecycle statuses.
const (
	RequestPending    = "pending"
	RequestAssigned   = "assigned"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

// RequestStatuses lists every valid request status.
var RequestStatuses = []any{
	RequestPending,
	RequestAssigned,
	RequestInProgress,
	RequestCompleted,
	RequestCancelled,
}

// CreateRequestSchema validates the "create a service request" operation.
func CreateRequestSchema(s Settings) validate.Schema {
	return validate.Schema{
		"customer_id": {Type: validate.TypeUUID, Required: true},
		"subject": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.SubjectMaxLen),
			Transform: nameTransform(),
		},
		"description": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
		"priority": {
			Type:    validate.TypeEnum,
			Enum:    RequestPriorities,
			Default: PriorityNormal,
		},
		"category": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NameMaxLen),
			Transform: nameTransform(),
		},
		"tags": {
			Type: validate.TypeArray,
			Max:  validate.Num(20),
			Items: &validate.Rule{
				Type:      validate.TypeString,
				Min:       validate.Num(1),
				Max:       validate.Num(50),
				Transform: trimTransform(),
			},
		},
	}
}

// AssignRequestSchema validates assigning a request to a user.
func AssignRequestSchema(s Settings) validate.Schema {
	return validate.Schema{
		"request_id": {Type: validate.TypeUUID, Required: true},
		"user_id":    {Type: validate.TypeUUID, Required: true},
		"note": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
}

// UpdateRequestStatusSchema validates a request status transition.
func UpdateRequestStatusSchema(s Settings) validate.Schema {
	return validate.Schema{
		"request_id": {Type: validate.TypeUUID, Required: true},
		"status":     {Type: validate.TypeEnum, Required: true, Enum: RequestStatuses},
		"note": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
}

// AddRequestNoteSchema validates attaching a note to a service request.
func AddRequestNoteSchema(s Settings) validate.Schema {
	return validate.Schema{
		"request_id": {Type: validate.TypeUUID, Required: true},
		"note": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
}

// ConvertToAppointmentSchema validates turning an accepted request into a
// scheduled appointment.
func ConvertToAppointmentSchema(s Settings) validate.Schema {
	return validate.Schema{
		"request_id":       {Type: validate.TypeUUID, Required: true},
		"scheduled_at":     scheduledAtRule(s, true),
		"duration_minutes": durationRule(s, true),
		"location": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.AddressMaxLen),
			Transform: trimTransform(),
		},
		"notes": {
			Type: validate.TypeString,
			Max:  validate.Num(s.NoteMaxLen),
		},
	}
}
