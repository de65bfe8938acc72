package model

// Package model defines the domain data structures shared across the bot:
// pending sessions, download jobs with their state table, produced result
// files, progress snapshots and the error kinds a job can end with.
