// Package services holds the business logic of the registration backend.
//
// Services defined in this package:
// - RegistrationService: enrollment, withdrawal and upcoming registrations
package services
