// Package web serves the browser UI: a single page listing stored tasks with
// a form for adding new ones and a panel that requests a plan from the JSON
// API.
package web
