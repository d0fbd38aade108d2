// Package bms defines the validation schemas for the Rising BMS entities —
// customers, appointments, and service requests — and a Validator that
// applies them.
//
// Schemas are built once from environment-driven Settings and reused for
// every call. The package registers two BMS-specific extensions on its
// engine: a "phone" type (E.164 international format) and a "futureWithin"
// constraint that keeps appointment slots inside the configured booking
// window.
//
//	settings, err := bms.LoadSettings()
//	if err != nil { ... }
//	v := bms.NewValidator(settings)
//
//	res, err := v.CreateCustomer(payload)
//	if err != nil { ... }
//	if !res.Valid { ... }
package bms
