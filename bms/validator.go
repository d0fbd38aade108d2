package bms

import (
	"regexp"
	"time"

	"github.com/risingbms/validate"
)

// International phone number with optional leading plus (E.164).
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// futureWithinRule is the registered name of the scheduling-window constraint.
// A rule declares it by setting Params[futureWithinRule] to the window in days
// (0 means any future date).
const futureWithinRule = "futureWithin"

// Validator validates BMS entity operations against their schemas. Build one
// at startup and share it; it is safe for concurrent use.
type Validator struct {
	engine   *validate.Engine
	settings Settings

	customerCreate       validate.Schema
	customerUpdate       validate.Schema
	customerNote         validate.Schema
	customerStatus       validate.Schema
	appointmentCreate    validate.Schema
	appointmentUpdate    validate.Schema
	appointmentCancel    validate.Schema
	appointmentReslot    validate.Schema
	appointmentComplete  validate.Schema
	requestCreate        validate.Schema
	requestAssign        validate.Schema
	requestStatus        validate.Schema
	requestNote          validate.Schema
	requestToAppointment validate.Schema
}

// NewValidator builds the shared engine with the BMS-specific phone type and
// scheduling-window rule, and pre-builds every operation schema from the
// settings.
func NewValidator(settings Settings) *Validator {
	engine := validate.New(
		validate.WithType("phone", validate.TypeDef{
			Check: func(v any, _ validate.Rule) bool {
				s, ok := v.(string)
				return ok && phoneRegex.MatchString(s)
			},
		}),
		validate.WithRule(futureWithinRule, checkFutureWithin),
	)

	return &Validator{
		engine:   engine,
		settings: settings,

		customerCreate:       CreateCustomerSchema(settings),
		customerUpdate:       UpdateCustomerSchema(settings),
		customerNote:         AddCustomerNoteSchema(settings),
		customerStatus:       ChangeCustomerStatusSchema(settings),
		appointmentCreate:    CreateAppointmentSchema(settings),
		appointmentUpdate:    UpdateAppointmentSchema(settings),
		appointmentCancel:    CancelAppointmentSchema(settings),
		appointmentReslot:    RescheduleAppointmentSchema(settings),
		appointmentComplete:  CompleteAppointmentSchema(settings),
		requestCreate:        CreateRequestSchema(settings),
		requestAssign:        AssignRequestSchema(settings),
		requestStatus:        UpdateRequestStatusSchema(settings),
		requestNote:          AddRequestNoteSchema(settings),
		requestToAppointment: ConvertToAppointmentSchema(settings),
	}
}

// checkFutureWithin requires a date to lie in the future, and inside the
// configured booking window when one is set. Both boundaries are exclusive: a
// slot equal to the current instant or to the exact window end is rejected.
func checkFutureWithin(v any, rule validate.Rule) bool {
	t, ok := v.(time.Time)
	if !ok {
		return true // applies to dates only
	}

	days, _ := rule.Params[futureWithinRule].(float64)
	now := time.Now()
	if !t.After(now) {
		return false
	}
	if days <= 0 {
		return true
	}
	return t.Before(now.Add(time.Duration(days*24) * time.Hour))
}

func (v *Validator) CreateCustomer(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.customerCreate, validate.StripUnknown())
}

func (v *Validator) UpdateCustomer(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.customerUpdate, validate.StripUnknown())
}

func (v *Validator) AddCustomerNote(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.customerNote, validate.StripUnknown())
}

func (v *Validator) ChangeCustomerStatus(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.customerStatus, validate.StripUnknown())
}

func (v *Validator) CreateAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.appointmentCreate, validate.StripUnknown())
}

func (v *Validator) UpdateAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.appointmentUpdate, validate.StripUnknown())
}

func (v *Validator) CancelAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.appointmentCancel, validate.StripUnknown())
}

func (v *Validator) RescheduleAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.appointmentReslot, validate.StripUnknown())
}

func (v *Validator) CompleteAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.appointmentComplete, validate.StripUnknown())
}

func (v *Validator) CreateRequest(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.requestCreate, validate.StripUnknown())
}

func (v *Validator) AssignRequest(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.requestAssign, validate.StripUnknown())
}

func (v *Validator) UpdateRequestStatus(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.requestStatus, validate.StripUnknown())
}

func (v *Validator) AddRequestNote(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.requestNote, validate.StripUnknown())
}

func (v *Validator) ConvertRequestToAppointment(data map[string]any) (*validate.Result, error) {
	return v.engine.Validate(data, v.requestToAppointment, validate.StripUnknown())
}
