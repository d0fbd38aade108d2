package bms

import (
	"github.com/risingbms/validate"
	"github.com/risingbms/validate/sanitize"
)

// Customer lifecycle statuses.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
	CustomerLead     = "lead"
)

// CustomerStatuses lists every valid customer status.
var CustomerStatuses = []any{CustomerActive, CustomerInactive, CustomerLead}

func nameTransform() []validate.Transform {
	return []validate.Transform{sanitize.Text(sanitize.Trim, sanitize.CollapseSpaces)}
}

func emailTransform() []validate.Transform {
	return []validate.Transform{sanitize.Text(sanitize.Trim, sanitize.Lower)}
}

func trimTransform() []validate.Transform {
	return []validate.Transform{sanitize.Text(sanitize.Trim)}
}

// CreateCustomerSchema validates the "create a customer" operation.
func CreateCustomerSchema(s Settings) validate.Schema {
	return validate.Schema{
		"name": {
			Type:      validate.TypeString,
			Required:  true,
			Min:       validate.Num(s.NameMinLen),
			Max:       validate.Num(s.NameMaxLen),
			Transform: nameTransform(),
		},
		"email": {
			Type:      validate.TypeEmail,
			Required:  true,
			Transform: emailTransform(),
		},
		"phone": {
			Type:      "phone",
			Transform: trimTransform(),
			Messages: map[validate.Kind]string{
				validate.KindType: "phone must be a valid international phone number",
			},
		},
		"company": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NameMaxLen),
			Transform: nameTransform(),
		},
		"address": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.AddressMaxLen),
			Transform: trimTransform(),
		},
		"notes": {
			Type: validate.TypeString,
			Max:  validate.Num(s.NoteMaxLen),
		},
		"status": {
			Type:    validate.TypeEnum,
			Enum:    CustomerStatuses,
			Default: CustomerActive,
		},
	}
}

// UpdateCustomerSchema validates partial customer updates. Everything except
// the target ID is optional.
func UpdateCustomerSchema(s Settings) validate.Schema {
	return validate.Schema{
		"customer_id": {Type: validate.TypeUUID, Required: true},
		"name": {
			Type:      validate.TypeString,
			Min:       validate.Num(s.NameMinLen),
			Max:       validate.Num(s.NameMaxLen),
			Transform: nameTransform(),
		},
		"email": {
			Type:      validate.TypeEmail,
			Transform: emailTransform(),
		},
		"phone": {
			Type:      "phone",
			Transform: trimTransform(),
			Messages: map[validate.Kind]string{
				validate.KindType: "phone must be a valid international phone number",
			},
		},
		"company": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NameMaxLen),
			Transform: nameTransform(),
		},
		"address": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.AddressMaxLen),
			Transform: trimTransform(),
		},
		"status": {Type: validate.TypeEnum, Enum: CustomerStatuses},
	}
}

// AddCustomerNoteSchema validates attaching a note to a customer record.
func AddCustomerNoteSchema(s Settings) validate.Schema {
	return validate.Schema{
		"customer_id": {Type: validate.TypeUUID, Required: true},
		"note": {
			Type:      validate.TypeString,
			Required:  true,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
}

// ChangeCustomerStatusSchema validates a status transition with an optional
// reason recorded alongside.
func ChangeCustomerStatusSchema(s Settings) validate.Schema {
	return validate.Schema{
		"customer_id": {Type: validate.TypeUUID, Required: true},
		"status":      {Type: validate.TypeEnum, Required: true, Enum: CustomerStatuses},
		"reason": {
			Type:      validate.TypeString,
			Max:       validate.Num(s.NoteMaxLen),
			Transform: trimTransform(),
		},
	}
}
