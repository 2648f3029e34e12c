// Package api implements the JSON endpoints for tasks and study plans. It
// decodes and validates requests, calls the services, and maps service and
// store errors to status codes and client-safe messages.
package api
