// Package httpcheck provides an HTTP endpoint probe for pulse health
// checks.
//
// The probe issues one GET request per invocation against a downstream
// service's health endpoint and compares the response status code against
// the expected value.
package httpcheck
