// Package service contains the application use cases. It orchestrates the
// domain types and the store interfaces to fulfil API and web requests:
//
//   - TaskService creates tasks (singly or as an all-or-nothing batch) and
//     lists them.
//   - PlanService loads every task and asks the planner for a seven-day plan
//     starting today in the configured time zone.
//
// Services receive their dependencies through constructors and never depend
// on a concrete database implementation.
package service
